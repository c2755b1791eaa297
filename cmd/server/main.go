// Package main is the entry point for the pedalpoint server.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/pedalpoint/pedalpoint/internal/api"
	"github.com/pedalpoint/pedalpoint/internal/config"
	"github.com/pedalpoint/pedalpoint/internal/gbfs"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error: ", err)
	}

	feeds := gbfs.NewClient(cfg.FeedBaseURL, cfg.HTTPTimeout)
	router := api.NewRouter(cfg, feeds)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("🚲 pedalpoint server starting on port %s\n", cfg.Port)
	fmt.Printf("📍 Environment: %s\n", cfg.Env)
	fmt.Printf("🔗 http://localhost:%s\n", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
