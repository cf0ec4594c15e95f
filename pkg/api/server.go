// Package api exposes the universal-file codec over HTTP: decode and
// inspect endpoints behind X-API-Key authentication, with Prometheus
// metrics and structured request logging.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Router builds the HTTP handler with all routes and middleware configured.
func Router(config ServerConfig, metrics *Metrics, log zerolog.Logger) http.Handler {
	server := NewServer(config, metrics, log)

	r := chi.NewRouter()

	r.Use(requestLogger(log))
	r.Use(recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey, metrics))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Post("/inspect", metrics.InstrumentHandler("POST", "/api/v1/inspect", server.handleInspect))
	})

	return r
}

// StartServer starts the HTTP server and blocks until it exits.
func StartServer(config ServerConfig, log zerolog.Logger) error {
	metrics := NewMetrics()
	handler := Router(config, metrics, log)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Info().Str("addr", addr).Msg("starting uffio API server")
	return http.ListenAndServe(addr, handler)
}
