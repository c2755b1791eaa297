package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "pedalpoint",
		"description": "Bike-share station finder backed by live GBFS feeds",
		"version":     version,
		"endpoints": map[string]string{
			"GET /":                "API information",
			"GET /health":          "Health check",
			"GET /stations/nearby": "Ranked stations near a location",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check the root endpoint (/) for available routes",
	})
}
