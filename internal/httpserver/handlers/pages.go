package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"thermodash/internal/web"
)

func Index(sm Sessions, rd *web.Renderer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, http.StatusOK, web.PageIndex, web.View{User: currentUser(sm, r, lg)})
	}
}

func NotFound(rd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, http.StatusNotFound, web.PageNotFound, web.View{})
	}
}

func Healthz(p Pinger, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			lg.Warnw("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
