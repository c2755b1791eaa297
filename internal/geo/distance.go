// Package geo provides great-circle distance math and a bike grid index
package geo

import (
	"fmt"
	"math"
)

const (
	earthRadiusMeters = 6371000
	metersPerMile     = 1609.344
)

// Unit selects the distance unit for ranked results
type Unit string

const (
	Miles      Unit = "miles"
	Kilometers Unit = "km"
)

// ParseUnit maps a query-string value to a Unit; empty defaults to miles
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "miles", "mi":
		return Miles, nil
	case "km", "kilometers":
		return Kilometers, nil
	}
	return "", fmt.Errorf("unsupported distance unit %q", s)
}

// FromMeters converts a distance in meters to the unit
func (u Unit) FromMeters(meters float64) float64 {
	if u == Kilometers {
		return meters / 1000
	}
	return meters / metersPerMile
}

// Haversine calculates the distance in meters between two lat/lng points
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
