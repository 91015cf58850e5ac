package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterStaticRoutes mounts:
// - /web/* -> files under dir
// - /      -> redirect to /web/
func RegisterStaticRoutes(r chi.Router, dir string) {
	if r == nil {
		return
	}
	if dir == "" {
		dir = "."
	}

	r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(dir))))
	r.Get("/web", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/web/", http.StatusFound)
	})
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/web/", http.StatusFound)
	})
}
