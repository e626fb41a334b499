// Package router provides HTTP routing configuration using Chi.
package router

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remiblancher/qoid/internal/api/handler"
	"github.com/remiblancher/qoid/internal/api/middleware"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Config holds router configuration.
type Config struct {
	Version string
	// Table is served by the /api/v1 routes that take no {table}.
	Table string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	healthHandler := handler.NewHealthHandler(cfg.Version, cfg.Table)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// OpenAPI spec
	r.Get("/api/openapi.yaml", serveOpenAPISpec)

	tableHandler := handler.NewTableHandler(cfg.Table)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tables", func(r chi.Router) {
			r.Get("/", tableHandler.List)
			r.Route("/{table}", func(r chi.Router) {
				r.Get("/", tableHandler.Get)
				lookupRoutes(r, tableHandler)
			})
		})

		// Default table
		lookupRoutes(r, tableHandler)
	})

	return r
}

// lookupRoutes mounts the per-entry lookups.
func lookupRoutes(r chi.Router, h *handler.TableHandler) {
	r.Get("/oids/{oid}", h.ByOID)
	r.Get("/names/{name}", h.ByName)
	r.Get("/resolve/{oid}", h.Resolve)
}

// serveOpenAPISpec serves the OpenAPI specification file.
func serveOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiSpec)
}
