package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) routes(opts Options) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/new_game", h.handleNewGame)
		r.Post("/play", h.handlePlay)
		r.Post("/state", h.handleState)
		r.Post("/ai_move", h.handleAiMove)
		r.Get("/solve", h.handleSolve)
		r.Get("/table/{index}", h.handleTableEntry)
	})
	r.Get("/ws/play", h.serveWS)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	if opts.WebDir != "" {
		RegisterStaticRoutes(r, opts.WebDir)
	}
	return r
}
