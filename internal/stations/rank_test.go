package stations

import (
	"errors"
	"math"
	"testing"

	"github.com/pedalpoint/pedalpoint/internal/geo"
	"github.com/pedalpoint/pedalpoint/internal/models"
)

func TestRankSortsByDistance(t *testing.T) {
	queryLat, queryLon := 37.7749, -122.4194
	records := []models.Station{
		stationAt("far", 37.80, -122.44),
		stationAt("near", 37.7750, -122.4194),
		stationAt("mid", 37.78, -122.42),
	}

	got, err := Rank(records, queryLat, queryLon, geo.Miles, 20)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ranked = %d stations, want 3", len(got))
	}
	if got[0].ID != "near" || got[1].ID != "mid" || got[2].ID != "far" {
		t.Errorf("order = %s, %s, %s, want near, mid, far", got[0].ID, got[1].ID, got[2].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Errorf("distances not non-decreasing at %d: %f < %f", i, got[i].Distance, got[i-1].Distance)
		}
	}
}

func TestRankTiesBrokenByID(t *testing.T) {
	// Two stations at the same point are equidistant from anywhere.
	records := []models.Station{
		stationAt("B", 37.78, -122.42),
		stationAt("A", 37.78, -122.42),
	}

	got, err := Rank(records, 37.7749, -122.4194, geo.Miles, 20)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if got[0].ID != "A" || got[1].ID != "B" {
		t.Errorf("tie order = %s, %s, want A, B", got[0].ID, got[1].ID)
	}
}

func TestRankLimit(t *testing.T) {
	var records []models.Station
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		records = append(records, stationAt(id, 37.78, -122.42))
	}

	got, err := Rank(records, 37.7749, -122.4194, geo.Miles, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("limit 3 returned %d stations", len(got))
	}

	// Fewer eligible than the limit: return all of them, never pad.
	got, err = Rank(records[:2], 37.7749, -122.4194, geo.Miles, 20)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limit 20 with 2 eligible returned %d stations", len(got))
	}
}

func TestRankInvalidLimit(t *testing.T) {
	records := []models.Station{stationAt("A", 37.78, -122.42)}

	for _, limit := range []int{0, -1, -20} {
		_, err := Rank(records, 37.7749, -122.4194, geo.Miles, limit)
		if !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("Rank(limit=%d) error = %v, want ErrInvalidLimit", limit, err)
		}
	}
}

func TestRankEmptyInput(t *testing.T) {
	got, err := Rank(nil, 37.7749, -122.4194, geo.Miles, 20)
	if err != nil {
		t.Fatalf("Rank on zero eligible stations should not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ranked = %d stations, want 0", len(got))
	}
}

func TestRankUnitConversion(t *testing.T) {
	records := []models.Station{stationAt("A", 38.7749, -122.4194)} // one degree of latitude away

	miles, err := Rank(records, 37.7749, -122.4194, geo.Miles, 1)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	km, err := Rank(records, 37.7749, -122.4194, geo.Kilometers, 1)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	if math.Abs(km[0].Distance-111.195) > 0.5 {
		t.Errorf("km distance = %f, want ~111.2", km[0].Distance)
	}
	if math.Abs(miles[0].Distance-69.09) > 0.5 {
		t.Errorf("mile distance = %f, want ~69.1", miles[0].Distance)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	records := []models.Station{
		stationAt("B", 37.80, -122.44),
		stationAt("A", 37.7750, -122.4194),
	}

	if _, err := Rank(records, 37.7749, -122.4194, geo.Miles, 20); err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if records[0].ID != "B" || records[0].Distance != 0 {
		t.Errorf("input slice mutated: %+v", records[0])
	}
}
