// Package web renders the dashboard's HTML pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"thermodash/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageIndex      = "index"
	PageLogin      = "login"
	PageAddUser    = "add_user"
	PageGraph      = "graph"
	PageAccessKeys = "access_keys"
	PageNotFound   = "404"
)

var pages = []string{PageIndex, PageLogin, PageAddUser, PageGraph, PageAccessKeys, PageNotFound}

// View is the data every page template receives.
type View struct {
	User    *models.User
	Message string
	Count   int
	Users   []models.User
	Keys    []models.AccessKeyListing
}

type Renderer struct {
	pages map[string]*template.Template
	lg    *zap.SugaredLogger
}

func NewRenderer(lg *zap.SugaredLogger) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), lg: lg}
	for _, p := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+p+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.pages[p] = t
	}
	return r, nil
}

// Render executes page into a buffer first so that a template error still
// produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, v View) {
	t, ok := r.pages[page]
	if !ok {
		r.lg.Errorw("unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		r.lg.Errorw("render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Login renders the login page with message. It is the gate's deny view.
func (r *Renderer) Login(w http.ResponseWriter, _ *http.Request, message string) {
	r.Render(w, http.StatusOK, PageLogin, View{Message: message})
}
