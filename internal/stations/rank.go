package stations

import (
	"fmt"
	"sort"

	"github.com/pedalpoint/pedalpoint/internal/geo"
	"github.com/pedalpoint/pedalpoint/internal/models"
)

// DefaultLimit caps result size when the caller does not choose one.
const DefaultLimit = 20

// Rank fills Distance on every station with the great-circle distance
// from the query point, converted to the requested unit, then sorts
// ascending by distance with ties broken by station id so equal
// distances still produce one deterministic order. The result is
// truncated to limit entries. Zero eligible stations is an empty
// result, not an error.
func Rank(records []models.Station, lat, lon float64, unit geo.Unit, limit int) ([]models.Station, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, ErrInvalidLimit)
	}

	ranked := make([]models.Station, len(records))
	copy(ranked, records)

	for i := range ranked {
		meters := geo.Haversine(lat, lon, ranked[i].Lat, ranked[i].Lon)
		ranked[i].Distance = unit.FromMeters(meters)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Distance != ranked[j].Distance {
			return ranked[i].Distance < ranked[j].Distance
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
