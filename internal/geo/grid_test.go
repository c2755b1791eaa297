package geo

import (
	"fmt"
	"testing"

	"github.com/pedalpoint/pedalpoint/internal/models"
)

func bikeAt(id string, lat, lon float64) models.Bike {
	return models.Bike{ID: id, Lat: lat, Lon: lon}
}

// Every bike within the threshold of a probe point must appear among
// the grid candidates; the grid may return extras but never misses.
func TestGridNeverMissesInRangeBikes(t *testing.T) {
	const threshold = 10.0 // meters
	center := models.Bike{Lat: 37.7749, Lon: -122.4194}

	var bikes []models.Bike
	for i := -20; i <= 20; i++ {
		for j := -20; j <= 20; j++ {
			id := fmt.Sprintf("b-%d-%d", i, j)
			bikes = append(bikes, bikeAt(id, center.Lat+float64(i)*0.00004, center.Lon+float64(j)*0.00004))
		}
	}

	grid := NewGrid(bikes, threshold)

	probes := []struct{ lat, lon float64 }{
		{center.Lat, center.Lon},
		{center.Lat + 0.0003, center.Lon - 0.0002},
		{center.Lat - 0.00077, center.Lon + 0.00051},
	}

	for _, p := range probes {
		candidates := make(map[string]bool)
		for _, b := range grid.Near(p.lat, p.lon) {
			candidates[b.ID] = true
		}

		for _, b := range bikes {
			if Haversine(p.lat, p.lon, b.Lat, b.Lon) < threshold && !candidates[b.ID] {
				t.Errorf("probe (%f, %f): in-range bike %s missing from grid candidates", p.lat, p.lon, b.ID)
			}
		}
	}
}

func TestGridNegativeCoordinates(t *testing.T) {
	bikes := []models.Bike{
		bikeAt("south", -33.8688, 151.2093),
		bikeAt("west", 40.7128, -74.0060),
	}
	grid := NewGrid(bikes, 10)

	got := grid.Near(-33.8688, 151.2093)
	if len(got) != 1 || got[0].ID != "south" {
		t.Errorf("Near southern hemisphere point = %v, want [south]", got)
	}
}

func TestGridHighLatitudeFallsBackToLinearScan(t *testing.T) {
	bikes := []models.Bike{
		bikeAt("arctic", 85.0, 10.0),
		bikeAt("tropics", 10.0, 10.0),
	}
	grid := NewGrid(bikes, 10)

	// Linear fallback returns all bikes as candidates everywhere.
	if got := grid.Near(10.0, 10.0); len(got) != 2 {
		t.Errorf("high-latitude grid returned %d candidates, want all %d", len(got), len(bikes))
	}
}

func TestGridEmpty(t *testing.T) {
	grid := NewGrid(nil, 10)
	if got := grid.Near(37.77, -122.42); len(got) != 0 {
		t.Errorf("empty grid returned %d candidates", len(got))
	}
}
