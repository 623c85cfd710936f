package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"thermodash/internal/auth"
	"thermodash/internal/store"
	"thermodash/internal/web"
)

func AccessKeys(st Store, rd *web.Renderer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys, err := st.ListAccessKeys(r.Context())
		if err != nil {
			storeError(w, lg, dbErrorBody, "list access keys failed", err)
			return
		}
		users, err := st.ListUsers(r.Context())
		if err != nil {
			storeError(w, lg, dbErrorBody, "list users failed", err)
			return
		}
		rd.Render(w, http.StatusOK, web.PageAccessKeys, web.View{
			User:    auth.UserFromContext(r.Context()),
			Message: popFlash(w, r),
			Users:   users,
			Keys:    keys,
		})
	}
}

// AddAccessKey issues a key and reports the outcome on the access key page.
func AddAccessKey(st Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer http.Redirect(w, r, "/access_keys", http.StatusSeeOther)
		if err := r.ParseForm(); err != nil {
			setFlash(w, "Invalid form.")
			return
		}
		email := strings.TrimSpace(r.PostFormValue("user_email"))
		ak, err := st.AddAccessKey(r.Context(), email, strings.TrimSpace(r.PostFormValue("accessKey")))
		switch {
		case errors.Is(err, store.ErrNotFound):
			lg.Warnw("access key for unknown user", "email", email)
			setFlash(w, fmt.Sprintf("Unable to look up user %s.", email))
			return
		case err != nil:
			lg.Errorw("add access key failed", "email", email, "error", err)
			setFlash(w, fmt.Sprintf("Unable to add access key for user %s.", email))
			return
		}
		admin := auth.UserFromContext(r.Context())
		audit(st, r, lg, &admin.UserID, store.ActionAccessKeyCreate, map[string]any{"key_id": ak.KeyID, "owner_id": ak.OwnerID})
		at := ak.CreationTime.UTC().Format(time.RFC3339)
		lg.Infow("access key added", "email", email, "key_id", ak.KeyID, "at", at)
		setFlash(w, fmt.Sprintf("Access key added for user %s at %s.", email, at))
	}
}
