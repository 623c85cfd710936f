package auth

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"thermodash/internal/models"
)

type Resolver interface {
	Resolve(r *http.Request) (*models.User, error)
}

// DenyFunc renders the login view with message. The gate answers denied
// requests with 200 and the login page rather than 401/403.
type DenyFunc func(w http.ResponseWriter, r *http.Request, message string)

func LoginRequiredMessage(r *http.Request) string {
	return fmt.Sprintf("To %s %s you need to login.", r.Method, r.URL.Path)
}

func AdminRequiredMessage(r *http.Request) string {
	return fmt.Sprintf("To %s %s is only allowed for administrators.", r.Method, r.URL.Path)
}

func RequireUser(res Resolver, deny DenyFunc, lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return gate(res, deny, lg, false)
}

func RequireAdmin(res Resolver, deny DenyFunc, lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return gate(res, deny, lg, true)
}

func gate(res Resolver, deny DenyFunc, lg *zap.SugaredLogger, admin bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFromContext(r.Context())
			if u == nil {
				var err error
				u, err = res.Resolve(r)
				if err != nil {
					lg.Errorw("session resolve failed", "path", r.URL.Path, "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
			}
			if u == nil {
				deny(w, r, LoginRequiredMessage(r))
				return
			}
			if admin && !u.IsAdmin() {
				deny(w, r, AdminRequiredMessage(r))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
