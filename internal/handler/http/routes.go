package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/kinds", h.kinds)
		r.Post("/api/encode", h.encode)
		r.Post("/api/preview", h.preview)
		r.Post("/api/checkout", h.createCheckout)
		r.Get("/api/checkout/{sessionID}", h.verifyCheckout)
	})

	// artifacts are already compressed, so no gzip here
	router.Group(func(r chi.Router) {
		r.Use(h.downloadAuth)

		r.Get("/api/artifacts/{format}", h.downloadArtifact)
	})

	// the signature covers the raw body, so it must not be decoded or rewritten
	router.Post("/api/webhooks/stripe", h.stripeWebhook)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
