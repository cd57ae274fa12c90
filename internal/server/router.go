package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"calculator-api/internal/calculator"
	"calculator-api/internal/config"
	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
	"calculator-api/internal/web"
)

func NewRouter(cfg *config.Config) http.Handler {

	r := chi.NewRouter()

	// Permissive CORS: the bundled UI is same-origin, but the API is open
	// to any caller.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.RecoverMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Route("/api", func(r chi.Router) {
		calculator.RegisterRoutes(r)
	})

	web.RegisterRoutes(r, cfg.DocsEnabled())

	return r
}
