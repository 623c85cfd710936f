package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"thermodash/internal/auth"
)

// requestLog logs one line per request, including the signed in user once
// the gate has resolved it.
func requestLog(lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, info := auth.WithRequestInfo(r.Context())
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"remote_ip", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			}
			if r.URL.RawQuery != "" {
				fields = append(fields, "query", r.URL.RawQuery)
			}
			if info.Email != "" {
				fields = append(fields, "user", info.Email)
			}
			switch levelForStatus(status) {
			case zapcore.ErrorLevel:
				lg.Errorw("http request", fields...)
			case zapcore.WarnLevel:
				lg.Warnw("http request", fields...)
			default:
				lg.Infow("http request", fields...)
			}
		})
	}
}

func levelForStatus(code int) zapcore.Level {
	if code >= 500 {
		return zapcore.ErrorLevel
	}
	if code >= 400 {
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}
