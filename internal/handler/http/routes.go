package http

import (
	"expvar"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(h.withBodyLimit)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Post("/api/captures", h.createCapture)
	})

	router.Get("/api/transcriptions/{id}/memos", h.listMemos)
	router.Get("/api/version", h.getServerVersion)
	router.Handle("/debug/vars", expvar.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
