package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	router.Get("/", h.index)

	// routes inside the provider scope
	router.Group(func(r chi.Router) {
		r.Use(h.provider.Middleware)

		r.Get("/events", h.events)

		r.Route("/api", func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			r.Get("/status", h.getStatus)
			r.Post("/connect", h.connect)
			r.Post("/disconnect", h.disconnect)
			r.Get("/health", h.health)
			r.Get("/version", h.getVersion)

			r.Get("/tools", h.listTools)
			r.Post("/tools/{name}/call", h.callTool)

			r.Get("/resources", h.listResources)
			r.Get("/resources/read", h.readResource)
			r.Get("/resources/templates", h.listTemplates)
			r.Post("/resources/templates/read", h.readTemplate)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
