package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// JSON API
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/build-info", h.getBuildInfo)
		r.Get("/api/models", h.listModels)
		r.Get("/api/models/{table}", h.getRegisteredModel)
		r.Get("/api/model-config/{table}", h.getParsedConfig)
		r.Get("/api/model-config/{table}/value", h.getConfigValue)
		r.Get("/api/app-config/{table}", h.getAppConfig)

		// routes consumed by the browser front-end
		r.Get("/get_config/{table}", h.getModelConfig)
		r.Get("/get_topic_ids", h.getTopicIDs)
	})

	// model browsers
	router.Get("/topologic/{table}", h.redirectToBrowser)
	router.Get("/topologic/{table}/*", h.serveBrowser)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
