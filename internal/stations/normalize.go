// Package stations reconciles bike-share feeds and ranks stations by
// distance from a query point
package stations

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/pedalpoint/pedalpoint/internal/models"
)

// NormalizeInfo validates raw station-metadata records, preserving feed
// order. Malformed records are skipped and counted; the batch fails only
// when malformed records were the entire batch.
func NormalizeInfo(records []map[string]any) ([]models.StationInfo, int, error) {
	var valid []models.StationInfo
	skipped := 0

	for _, rec := range records {
		id, ok := stringField(rec, "station_id")
		if !ok {
			skipped++
			continue
		}
		name, ok := stringField(rec, "name")
		if !ok {
			skipped++
			continue
		}
		lat, ok := floatField(rec, "lat")
		if !ok {
			skipped++
			continue
		}
		lon, ok := floatField(rec, "lon")
		if !ok {
			skipped++
			continue
		}
		valid = append(valid, models.StationInfo{ID: id, Name: name, Lat: lat, Lon: lon})
	}

	if len(valid) == 0 && skipped > 0 {
		return nil, skipped, fmt.Errorf("station information: no valid records in batch of %d: %w", skipped, ErrMalformedFeed)
	}
	return valid, skipped, nil
}

// NormalizeStatus validates raw status records and indexes them by
// station id. Duplicate ids are a data error resolved last-wins; the
// suppressed count is logged and returned for diagnostics.
func NormalizeStatus(records []map[string]any) (map[string]models.StationStatus, int, int, error) {
	byID := make(map[string]models.StationStatus)
	duplicates := 0
	skipped := 0

	for _, rec := range records {
		id, ok := stringField(rec, "station_id")
		if !ok {
			skipped++
			continue
		}
		total, ok := intField(rec, "num_bikes_available")
		if !ok || total < 0 {
			skipped++
			continue
		}
		ebikes, ok := intField(rec, "num_ebikes_available")
		if !ok || ebikes < 0 {
			skipped++
			continue
		}

		if _, seen := byID[id]; seen {
			duplicates++
		}
		byID[id] = models.StationStatus{ID: id, Total: total, EBike: ebikes}
	}

	if duplicates > 0 {
		slog.Warn("duplicate station ids in status feed", "suppressed", duplicates)
	}
	if len(byID) == 0 && skipped > 0 {
		return nil, duplicates, skipped, fmt.Errorf("station status: no valid records in batch of %d: %w", skipped, ErrMalformedFeed)
	}
	return byID, duplicates, skipped, nil
}

// NormalizeBikes validates raw free-floating bike records. The tag field
// is optional; coordinates and id are required.
func NormalizeBikes(records []map[string]any) ([]models.Bike, int, error) {
	var valid []models.Bike
	skipped := 0

	for _, rec := range records {
		id, ok := stringField(rec, "bike_id")
		if !ok {
			skipped++
			continue
		}
		lat, ok := floatField(rec, "lat")
		if !ok {
			skipped++
			continue
		}
		lon, ok := floatField(rec, "lon")
		if !ok {
			skipped++
			continue
		}
		tag, _ := stringField(rec, "tag")
		valid = append(valid, models.Bike{ID: id, Lat: lat, Lon: lon, Tag: tag})
	}

	if len(valid) == 0 && skipped > 0 {
		return nil, skipped, fmt.Errorf("free bikes: no valid records in batch of %d: %w", skipped, ErrMalformedFeed)
	}
	return valid, skipped, nil
}

func stringField(rec map[string]any, key string) (string, bool) {
	v, ok := rec[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// floatField coerces JSON numbers and numeric strings; some GBFS
// publishers quote their coordinates.
func floatField(rec map[string]any, key string) (float64, bool) {
	v, ok := rec[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func intField(rec map[string]any, key string) (int, bool) {
	f, ok := floatField(rec, key)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
