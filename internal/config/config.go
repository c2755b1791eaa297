// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pedalpoint/pedalpoint/internal/geo"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	Env         string
	FeedBaseURL string
	HTTPTimeout time.Duration

	// Fallback query point when the caller sends no coordinates.
	HomeLat float64
	HomeLon float64

	DefaultLimit     int
	DefaultUnit      string
	BikeRadiusMeters float64
	IncludeFreeBikes bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "3000"),
		Env:              getEnv("ENV", "development"),
		FeedBaseURL:      getEnv("GBFS_BASE_URL", "https://gbfs.baywheels.com/gbfs/en"),
		HTTPTimeout:      getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
		HomeLat:          getFloatEnv("HOME_LAT", 37.7749),
		HomeLon:          getFloatEnv("HOME_LON", -122.4194),
		DefaultLimit:     getIntEnv("DEFAULT_LIMIT", 20),
		DefaultUnit:      getEnv("DEFAULT_UNIT", "miles"),
		BikeRadiusMeters: getFloatEnv("BIKE_RADIUS_METERS", 10),
		IncludeFreeBikes: getEnv("INCLUDE_FREE_BIKES", "true") == "true",
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.FeedBaseURL); err != nil {
		return fmt.Errorf("GBFS_BASE_URL: %w", err)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("DEFAULT_LIMIT must be positive, got %d", c.DefaultLimit)
	}
	if c.BikeRadiusMeters <= 0 {
		return fmt.Errorf("BIKE_RADIUS_METERS must be positive, got %g", c.BikeRadiusMeters)
	}
	if _, err := geo.ParseUnit(c.DefaultUnit); err != nil {
		return fmt.Errorf("DEFAULT_UNIT: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}
