// Package router sets up the HTTP routes and middleware chain for the
// catalog API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalog/internal/handlers"
	"catalog/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(categories *handlers.Categories) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categories.List)
		r.Post("/", categories.Create)
		r.Get("/{id}", categories.Get)
		r.Patch("/{id}", categories.Update)
		r.Delete("/{id}", categories.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
