// Package api exposes the collected data files over a small read-only
// HTTP API.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/api/handler"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(st *store.Store, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow, logger))
	}

	// --- Handler dependencies ---
	h := handler.New(st, cfg)

	// --- Routes ---
	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stations", h.GetAllStations)
		r.Get("/stations/{siteID}", h.GetStation)
		r.Get("/metadata", h.GetMetadata)
	})

	return r
}
