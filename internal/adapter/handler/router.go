package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the part API and the static front-end served from publicDir.
func NewRouter(h *HTTPHandler, publicDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", h.HealthCheck)
	r.Post("/submit", h.Submit)
	r.Get("/parts", h.ListParts)
	r.Put("/parts/{id}", h.UpdatePart)
	r.Delete("/parts/{id}", h.DeletePart)

	static := NewStaticHandler(publicDir)
	r.Get("/", static.Index)
	r.Head("/", static.Index)
	r.NotFound(static.ServeHTTP)

	return r
}
