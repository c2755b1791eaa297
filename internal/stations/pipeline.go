package stations

import (
	"log/slog"

	"github.com/pedalpoint/pedalpoint/internal/geo"
	"github.com/pedalpoint/pedalpoint/internal/models"
)

// Input carries one freshly fetched snapshot of the raw feeds. Records
// are loosely typed decoded JSON; the pipeline validates them itself.
// Bikes is nil when the operator publishes no free-bike feed.
type Input struct {
	StationInfo   []map[string]any
	StationStatus []map[string]any
	Bikes         []map[string]any
}

// Query holds the caller parameters for one pipeline run
type Query struct {
	Lat, Lon         float64
	Predicate        Predicate
	Limit            int
	Unit             geo.Unit
	BikeRadiusMeters float64
	TagFilter        TagPredicate
}

// Result is a ranked station list plus the run's diagnostics
type Result struct {
	Stations    []models.Station
	Diagnostics models.Diagnostics
}

// Run executes the full pipeline on one input snapshot: normalize both
// feeds, reconcile, filter, count nearby free-floating bikes, rank by
// distance. It performs no I/O and shares no state between calls, so
// concurrent runs need no locking. Parameter errors (ErrInvalidLimit,
// a nil predicate) and empty-batch feed errors abort the run with no
// partial result.
func Run(in Input, q Query) (Result, error) {
	pred := q.Predicate
	if pred == nil {
		pred = EBikesOnly()
	}

	infos, infoSkipped, err := NormalizeInfo(in.StationInfo)
	if err != nil {
		return Result{}, err
	}
	statusByID, duplicates, statusSkipped, err := NormalizeStatus(in.StationStatus)
	if err != nil {
		return Result{}, err
	}

	var bikes []models.Bike
	bikesSkipped := 0
	if in.Bikes != nil {
		bikes, bikesSkipped, err = NormalizeBikes(in.Bikes)
		if err != nil {
			return Result{}, err
		}
	}

	reconciled, unmatched, anomalies := Reconcile(infos, statusByID)
	eligible := Filter(reconciled, pred)
	eligible = MatchBikes(eligible, bikes, q.BikeRadiusMeters, q.TagFilter)

	ranked, err := Rank(eligible, q.Lat, q.Lon, q.Unit, q.Limit)
	if err != nil {
		return Result{}, err
	}

	diags := models.Diagnostics{
		UnmatchedStations:       unmatched,
		AnomalousRecords:        anomalies,
		MalformedRecordsSkipped: infoSkipped + statusSkipped + bikesSkipped,
		DuplicateStatusRecords:  duplicates,
	}
	if diags.UnmatchedStations > 0 || diags.AnomalousRecords > 0 || diags.MalformedRecordsSkipped > 0 {
		slog.Info("feed irregularities",
			"unmatched", diags.UnmatchedStations,
			"anomalous", diags.AnomalousRecords,
			"malformed_skipped", diags.MalformedRecordsSkipped,
		)
	}

	return Result{Stations: ranked, Diagnostics: diags}, nil
}
