package stations

import (
	"github.com/pedalpoint/pedalpoint/internal/models"
)

// Reconcile joins station metadata with the status index, preserving
// metadata feed order. Stations with no status entry are dropped and
// counted, not treated as errors: the two feeds may transiently
// enumerate different station sets. A derived classic count below zero
// marks the record anomalous; the displayed count is clamped to zero
// while RawClassicBikes keeps the inconsistent value.
func Reconcile(infos []models.StationInfo, statusByID map[string]models.StationStatus) ([]models.Station, int, int) {
	var reconciled []models.Station
	unmatched := 0
	anomalies := 0

	for _, info := range infos {
		status, ok := statusByID[info.ID]
		if !ok {
			unmatched++
			continue
		}

		classic := status.Total - status.EBike
		s := models.Station{
			ID:              info.ID,
			Name:            info.Name,
			Lat:             info.Lat,
			Lon:             info.Lon,
			EBikes:          status.EBike,
			ClassicBikes:    classic,
			RawClassicBikes: classic,
		}
		if classic < 0 {
			s.ClassicBikes = 0
			s.Anomalous = true
			anomalies++
		}
		reconciled = append(reconciled, s)
	}

	return reconciled, unmatched, anomalies
}
