package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withResponseHash)

		r.Route("/api", func(r chi.Router) {
			r.Get("/version", h.getServerVersion)
			r.Get("/available", h.isAvailable)
			r.Get("/tx/{hash}", h.getTx)

			r.Route("/records", func(r chi.Router) {
				r.Get("/", h.listRecordIDs)
				r.Get("/{id}", h.getRecord)
				r.Get("/{id}/handle", h.getHandle)

				// signed writes
				r.Group(func(r chi.Router) {
					r.Use(h.walletAuth)
					r.Post("/", h.createRecord)
					r.Post("/{id}/verify", h.verifyRecord)
				})
			})

			r.Route("/gateway", func(r chi.Router) {
				r.Get("/keys", h.gatewayKeys)
				r.Post("/encrypt", h.encrypt)
				r.Post("/public-decrypt", h.publicDecrypt)
				r.With(h.walletAuth).Post("/user-decrypt", h.userDecrypt)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
