package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())

	router.Route("/api/notes", func(r chi.Router) {
		if h.authEnabled() {
			r.Use(h.withAuth)
		}

		r.Get("/", h.listNotes)
		r.Post("/", h.createNote)
		r.Put("/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
