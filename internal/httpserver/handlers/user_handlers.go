package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"thermodash/internal/auth"
	"thermodash/internal/models"
	"thermodash/internal/store"
	"thermodash/internal/web"
)

func AddUserForm(rd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, http.StatusOK, web.PageAddUser, web.View{User: auth.UserFromContext(r.Context())})
	}
}

// AddUser registers a new account. Validation failures re-render the form
// without touching the store.
func AddUser(st Store, rd *web.Renderer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := auth.UserFromContext(r.Context())
		form := func(status int, msg string) {
			rd.Render(w, status, web.PageAddUser, web.View{User: admin, Message: msg})
		}
		if err := r.ParseForm(); err != nil {
			form(http.StatusBadRequest, "Invalid form.")
			return
		}
		email := strings.TrimSpace(r.PostFormValue("email"))
		phone := strings.TrimSpace(r.PostFormValue("phone"))
		password := r.PostFormValue("password")
		if password != r.PostFormValue("confirmPassword") {
			form(http.StatusOK, "Password does not match.")
			return
		}
		if email == "" || password == "" {
			form(http.StatusBadRequest, "Email and password are required.")
			return
		}
		role, err := models.ParseRole(r.PostFormValue("role"))
		if err != nil {
			form(http.StatusBadRequest, "Unknown role.")
			return
		}
		digest, err := auth.HashPassword(password)
		if err != nil {
			storeError(w, lg, http.StatusText(http.StatusInternalServerError), "hash password failed", err)
			return
		}
		id, err := st.AddUser(r.Context(), email, phone, role, digest)
		if errors.Is(err, store.ErrConflict) {
			form(http.StatusConflict, fmt.Sprintf("User %s already exists.", email))
			return
		}
		if err != nil {
			storeError(w, lg, http.StatusText(http.StatusInternalServerError), "add user failed", err)
			return
		}
		audit(st, r, lg, &admin.UserID, store.ActionUserCreate, map[string]any{"user_id": id, "email": email, "role": role.String()})
		lg.Infow("user created", "user_id", id, "email", email, "role", role.String())
		form(http.StatusOK, fmt.Sprintf("Registration complete for %s.", email))
	}
}
