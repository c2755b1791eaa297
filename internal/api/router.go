package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pedalpoint/pedalpoint/internal/api/handlers"
	"github.com/pedalpoint/pedalpoint/internal/config"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(cfg *config.Config, feeds handlers.FeedSource) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recovery)
	r.Use(Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(Timeout(15 * time.Second))

	healthHandler := handlers.NewHealthHandler()
	rootHandler := handlers.NewRootHandler()
	stationHandler := handlers.NewStationHandler(cfg, feeds)

	r.Get("/", rootHandler.Index)
	r.Get("/api", rootHandler.Index)
	r.Get("/health", healthHandler.Health)
	r.Get("/stations/nearby", stationHandler.GetNearby)

	return r
}
