package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pedalpoint/pedalpoint/internal/config"
	"github.com/pedalpoint/pedalpoint/internal/geo"
	"github.com/pedalpoint/pedalpoint/internal/stations"
)

const (
	maxLimit            = 100
	maxBikeRadius       = 500 // meters
	defaultClassicCount = 1   // for the mixed-classic rule
)

type StationHandler struct {
	cfg   *config.Config
	feeds FeedSource
}

func NewStationHandler(cfg *config.Config, feeds FeedSource) *StationHandler {
	return &StationHandler{cfg: cfg, feeds: feeds}
}

// GetNearby fetches a fresh feed snapshot, runs the reconciliation
// pipeline, and returns the ranked stations with diagnostics
func (h *StationHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := h.parseCoords(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid coordinates",
			"message": err.Error(),
		})
		return
	}

	rawUnit := r.URL.Query().Get("unit")
	if rawUnit == "" {
		rawUnit = h.cfg.DefaultUnit
	}
	unit, err := geo.ParseUnit(rawUnit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid unit",
			"message": err.Error(),
		})
		return
	}

	filterName := r.URL.Query().Get("filter")
	if filterName == "" {
		filterName = stations.RuleEBikesOnly
	}
	classic := parseIntParam(r, "classic", defaultClassicCount, 0, 1000)

	pred, err := stations.ByName(filterName, classic)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Unknown filter",
			"message": err.Error(),
		})
		return
	}

	limit := h.cfg.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit > maxLimit {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid limit",
				"message": "limit must be an integer between 1 and 100",
			})
			return
		}
		// Non-positive values flow through so the pipeline rejects
		// them the same way for every caller.
	}

	radius := h.cfg.BikeRadiusMeters
	if raw := r.URL.Query().Get("bike_radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 || radius > maxBikeRadius {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid bike_radius",
				"message": "bike_radius must be a positive number of meters, at most 500",
			})
			return
		}
	}

	var tagFilter stations.TagPredicate
	if tag := r.URL.Query().Get("tag"); tag != "" {
		tagFilter = stations.TagEquals(tag)
	}

	input, err := h.feeds.FetchAll(r.Context(), h.cfg.IncludeFreeBikes)
	if err != nil {
		slog.Error("feed fetch failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "Upstream feed unavailable",
			"message": err.Error(),
		})
		return
	}

	result, err := stations.Run(input, stations.Query{
		Lat:              lat,
		Lon:              lon,
		Predicate:        pred,
		Limit:            limit,
		Unit:             unit,
		BikeRadiusMeters: radius,
		TagFilter:        tagFilter,
	})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, stations.ErrInvalidLimit) || errors.Is(err, stations.ErrUnknownPredicate) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{
			"error":   "Pipeline failed",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"query":       map[string]any{"lat": lat, "lon": lon, "filter": filterName, "unit": unit, "limit": limit},
		"stations":    result.Stations,
		"diagnostics": result.Diagnostics,
		"metadata": map[string]any{
			"stations_found": len(result.Stations),
		},
	})
}

// parseCoords reads lat/lon, falling back to the configured home
// location when neither is supplied
func (h *StationHandler) parseCoords(r *http.Request) (float64, float64, error) {
	rawLat := r.URL.Query().Get("lat")
	rawLon := r.URL.Query().Get("lon")

	if rawLat == "" && rawLon == "" {
		return h.cfg.HomeLat, h.cfg.HomeLon, nil
	}
	if rawLat == "" || rawLon == "" {
		return 0, 0, errors.New("lat and lon must be supplied together")
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, errors.New("lat must be a number between -90 and 90")
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, errors.New("lon must be a number between -180 and 180")
	}
	return lat, lon, nil
}

func parseIntParam(r *http.Request, name string, defaultVal, min, max int) int {
	str := r.URL.Query().Get(name)
	if str == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}

	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}
