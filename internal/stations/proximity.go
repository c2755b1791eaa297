package stations

import (
	"github.com/pedalpoint/pedalpoint/internal/geo"
	"github.com/pedalpoint/pedalpoint/internal/models"
)

// DefaultBikeRadiusMeters is the proximity threshold when the caller
// does not supply one.
const DefaultBikeRadiusMeters = 10

// TagPredicate optionally restricts which free-floating bikes count.
// A nil predicate counts every bike.
type TagPredicate func(tag string) bool

// TagEquals matches bikes carrying exactly the given tag
func TagEquals(tag string) TagPredicate {
	return func(t string) bool { return t == tag }
}

// MatchBikes fills MatchedBikes on each station with the number of
// free-floating bikes strictly closer than thresholdMeters. A bike at
// exactly the threshold is excluded. Bikes are never mutated, and a
// bike within range of two stations counts for both; there is no
// global dedup across stations.
func MatchBikes(records []models.Station, bikes []models.Bike, thresholdMeters float64, tagOK TagPredicate) []models.Station {
	if len(records) == 0 || len(bikes) == 0 {
		return records
	}
	if thresholdMeters <= 0 {
		thresholdMeters = DefaultBikeRadiusMeters
	}

	grid := geo.NewGrid(bikes, thresholdMeters)
	for i := range records {
		count := 0
		for _, b := range grid.Near(records[i].Lat, records[i].Lon) {
			if tagOK != nil && !tagOK(b.Tag) {
				continue
			}
			if geo.Haversine(records[i].Lat, records[i].Lon, b.Lat, b.Lon) < thresholdMeters {
				count++
			}
		}
		records[i].MatchedBikes = count
	}
	return records
}
