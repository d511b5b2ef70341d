package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	service Service
	logger  Logger
}

// newHandler returns the router serving the API, the metrics if
// metricsHandler is not nil, and the assets for every other path.
func newHandler(rootURL string, assets fs.FS, service Service,
	metricsHandler http.Handler, logger Logger) http.Handler {
	rootURL = strings.TrimSuffix(rootURL, "/")

	handlers := &handlers{
		service: service,
		logger:  logger,
	}
	assetServer := &assetServer{
		root:   assets,
		prefix: rootURL,
	}

	routes := func(router chi.Router) {
		router.Get("/api/v1/lookup/{ip}", handlers.lookup)
		router.Get("/api/v1/self", handlers.self)
		router.Get("/api/v1/self/lookup", handlers.selfLookup)
		if metricsHandler != nil {
			router.Handle("/metrics", metricsHandler)
		}
		router.Handle("/*", assetServer)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RealIP, logMiddleware(logger))
	if rootURL == "" {
		routes(router)
	} else {
		router.Route(rootURL, routes)
	}

	return router
}
