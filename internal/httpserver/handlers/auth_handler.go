package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"thermodash/internal/auth"
	"thermodash/internal/models"
	"thermodash/internal/store"
	"thermodash/internal/web"
)

const (
	loginFailedMessage = "Invalid username or password"
	afterLoginURL      = "/graph?count=1000"
)

func LoginForm(sm Sessions, rd *web.Renderer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, http.StatusOK, web.PageLogin, web.View{User: currentUser(sm, r, lg)})
	}
}

func Login(st Store, sm Sessions, rd *web.Renderer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rd.Render(w, http.StatusBadRequest, web.PageLogin, web.View{Message: loginFailedMessage})
			return
		}
		email := strings.TrimSpace(r.PostFormValue("email"))
		u, err := st.ValidateUser(r.Context(), email, r.PostFormValue("password"))
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			storeError(w, lg, http.StatusText(http.StatusInternalServerError), "validate user failed", err)
			return
		}
		if u == nil {
			lg.Infow("login failed", "email", email, "ip", r.RemoteAddr)
			rd.Render(w, http.StatusOK, web.PageLogin, web.View{Message: loginFailedMessage})
			return
		}
		if err := sm.Login(w, r, u); err != nil {
			storeError(w, lg, http.StatusText(http.StatusInternalServerError), "session create failed", err)
			return
		}
		audit(st, r, lg, &u.UserID, store.ActionLogin, map[string]any{"ip": r.RemoteAddr})
		lg.Infow("user logged in", "email", u.Email)
		http.Redirect(w, r, afterLoginURL, http.StatusSeeOther)
	}
}

func Logout(st Store, sm Sessions, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := auth.UserFromContext(r.Context())
		if err := sm.Logout(w, r); err != nil {
			lg.Errorw("logout failed", "error", err)
		}
		if u != nil {
			audit(st, r, lg, &u.UserID, store.ActionLogout, nil)
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// currentUser resolves the session for pages that render for everyone but
// show a different navigation to signed in users.
func currentUser(sm Sessions, r *http.Request, lg *zap.SugaredLogger) *models.User {
	u, err := sm.Resolve(r)
	if err != nil {
		lg.Warnw("session resolve failed", "error", err)
		return nil
	}
	return u
}

func audit(st AuditStore, r *http.Request, lg *zap.SugaredLogger, userID *int64, action string, meta any) {
	if err := st.RecordAudit(r.Context(), userID, action, meta); err != nil {
		lg.Warnw("audit write failed", "action", action, "error", err)
	}
}
