package stations

import (
	"testing"

	"github.com/pedalpoint/pedalpoint/internal/models"
)

func info(id string) models.StationInfo {
	return models.StationInfo{ID: id, Name: "Station " + id, Lat: 37.77, Lon: -122.42}
}

func TestReconcile(t *testing.T) {
	infos := []models.StationInfo{info("A"), info("B"), info("C")}
	statusByID := map[string]models.StationStatus{
		"A": {ID: "A", Total: 5, EBike: 2},
		"C": {ID: "C", Total: 4, EBike: 4},
	}

	got, unmatched, anomalies := Reconcile(infos, statusByID)

	if unmatched != 1 {
		t.Errorf("unmatched = %d, want 1 (station B has no status)", unmatched)
	}
	if anomalies != 0 {
		t.Errorf("anomalies = %d, want 0", anomalies)
	}
	if len(got) != 2 {
		t.Fatalf("reconciled = %d stations, want 2", len(got))
	}

	// Metadata feed order is preserved.
	if got[0].ID != "A" || got[1].ID != "C" {
		t.Errorf("order = %s, %s, want A, C", got[0].ID, got[1].ID)
	}
	if got[0].ClassicBikes != 3 || got[0].EBikes != 2 {
		t.Errorf("station A: classic=%d ebikes=%d, want 3/2", got[0].ClassicBikes, got[0].EBikes)
	}
	if got[1].ClassicBikes != 0 {
		t.Errorf("station C: classic=%d, want 0", got[1].ClassicBikes)
	}
}

func TestReconcileNegativeClassicIsAnomalous(t *testing.T) {
	infos := []models.StationInfo{info("A")}
	statusByID := map[string]models.StationStatus{
		"A": {ID: "A", Total: 2, EBike: 3},
	}

	got, _, anomalies := Reconcile(infos, statusByID)

	if anomalies != 1 {
		t.Fatalf("anomalies = %d, want 1", anomalies)
	}
	if len(got) != 1 {
		t.Fatalf("anomalous record dropped; want it retained")
	}
	s := got[0]
	if !s.Anomalous {
		t.Error("record not flagged anomalous")
	}
	if s.ClassicBikes != 0 {
		t.Errorf("displayed classic count = %d, want clamped 0", s.ClassicBikes)
	}
	if s.RawClassicBikes != -1 {
		t.Errorf("raw classic count = %d, want -1 preserved for diagnostics", s.RawClassicBikes)
	}
}

func TestReconcileDeterministic(t *testing.T) {
	infos := []models.StationInfo{info("B"), info("A")}
	statusByID := map[string]models.StationStatus{
		"A": {ID: "A", Total: 1, EBike: 1},
		"B": {ID: "B", Total: 1, EBike: 1},
	}

	first, _, _ := Reconcile(infos, statusByID)
	second, _, _ := Reconcile(infos, statusByID)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d differs across runs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	// Status index order never leaks in; output follows the metadata feed.
	if first[0].ID != "B" || first[1].ID != "A" {
		t.Errorf("order = %s, %s, want B, A", first[0].ID, first[1].ID)
	}
}
