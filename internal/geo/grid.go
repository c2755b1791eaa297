package geo

import (
	"math"

	"github.com/pedalpoint/pedalpoint/internal/models"
)

const (
	metersPerDegreeLat = 110574.0
	metersPerDegreeLon = 111320.0

	// Above this latitude longitude cells collapse; fall back to a
	// linear scan instead of sizing cells for a near-pole region.
	maxGridLatitude = 80.0
)

type cellKey struct {
	row, col int
}

// Grid buckets bikes into latitude/longitude cells sized so that any
// point within the threshold of a probe location lies in the 3x3 cell
// neighborhood around it. Candidates still need an exact distance test.
type Grid struct {
	cells   map[cellKey][]models.Bike
	cellLat float64
	cellLon float64
	all     []models.Bike
	linear  bool
}

// NewGrid indexes bikes for range probes up to thresholdMeters
func NewGrid(bikes []models.Bike, thresholdMeters float64) *Grid {
	g := &Grid{}

	maxAbsLat := 0.0
	for _, b := range bikes {
		if abs := math.Abs(b.Lat); abs > maxAbsLat {
			maxAbsLat = abs
		}
	}
	if maxAbsLat > maxGridLatitude || thresholdMeters <= 0 {
		g.linear = true
		g.all = bikes
		return g
	}

	// One degree of longitude spans fewer meters as latitude grows, so
	// size the column width for the highest latitude seen, with a one
	// degree cushion for probes slightly poleward of any bike.
	cosRef := math.Cos((maxAbsLat + 1) * math.Pi / 180)
	g.cellLat = thresholdMeters / metersPerDegreeLat
	g.cellLon = thresholdMeters / (metersPerDegreeLon * cosRef)

	g.cells = make(map[cellKey][]models.Bike)
	for _, b := range bikes {
		k := g.keyFor(b.Lat, b.Lon)
		g.cells[k] = append(g.cells[k], b)
	}
	return g
}

func (g *Grid) keyFor(lat, lon float64) cellKey {
	return cellKey{
		row: int(math.Floor(lat / g.cellLat)),
		col: int(math.Floor(lon / g.cellLon)),
	}
}

// Near returns every bike that could be within the grid's threshold of
// the given point. The result may contain bikes farther away; callers
// apply the exact distance test.
func (g *Grid) Near(lat, lon float64) []models.Bike {
	if g.linear {
		return g.all
	}

	center := g.keyFor(lat, lon)
	var candidates []models.Bike
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			k := cellKey{row: center.row + dr, col: center.col + dc}
			candidates = append(candidates, g.cells[k]...)
		}
	}
	return candidates
}
