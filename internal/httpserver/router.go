package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"thermodash/internal/auth"
	"thermodash/internal/httpserver/handlers"
	"thermodash/internal/web"
)

type Options struct {
	MaxCount   int
	RequestLog bool
}

type SessionManager interface {
	handlers.Sessions
	auth.Resolver
}

func NewRouter(st handlers.Store, sm SessionManager, rd *web.Renderer, opts Options, lg *zap.SugaredLogger) http.Handler {
	if opts.MaxCount <= 0 {
		opts.MaxCount = 10000
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	if opts.RequestLog {
		r.Use(requestLog(lg))
	}

	r.Get("/", handlers.Index(sm, rd, lg))
	r.Get("/login", handlers.LoginForm(sm, rd, lg))
	r.Post("/login", handlers.Login(st, sm, rd, lg))
	r.Get("/healthz", handlers.Healthz(st, lg))

	r.Group(func(protected chi.Router) {
		protected.Use(auth.RequireUser(sm, rd.Login, lg))
		protected.Get("/logout", handlers.Logout(st, sm, lg))
		protected.Get("/graph", handlers.Graph(rd, opts.MaxCount))
		protected.Get("/latest", handlers.Latest(st, opts.MaxCount, lg))
		protected.Get("/latest/{count}", handlers.Latest(st, opts.MaxCount, lg))
		protected.Get("/data", handlers.Data(st, opts.MaxCount, lg))
		protected.Get("/data/{count}", handlers.Data(st, opts.MaxCount, lg))
	})
	r.Group(func(admin chi.Router) {
		admin.Use(auth.RequireAdmin(sm, rd.Login, lg))
		admin.Get("/add_user", handlers.AddUserForm(rd))
		admin.Post("/add_user", handlers.AddUser(st, rd, lg))
		admin.Get("/access_keys", handlers.AccessKeys(st, rd, lg))
		admin.Post("/add_access_key", handlers.AddAccessKey(st, lg))
		admin.Get("/latest_from_each", handlers.LatestFromEach(st, lg))
		admin.Get("/logs", handlers.AuditLogs(st, lg))
	})
	r.NotFound(handlers.NotFound(rd))

	return otelhttp.NewHandler(r, "thermodash")
}
