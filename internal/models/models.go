// Package models defines shared data types
package models

// StationInfo is a validated station-metadata record
type StationInfo struct {
	ID   string  `json:"station_id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// StationStatus is a validated live-count record for one station
type StationStatus struct {
	ID    string `json:"station_id"`
	Total int    `json:"num_bikes_available"`
	EBike int    `json:"num_ebikes_available"`
}

// Bike is a free-floating bike from the optional free-bike feed
type Bike struct {
	ID  string  `json:"bike_id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Tag string  `json:"tag,omitempty"`
}

// Station is the reconciled per-station view produced by the pipeline.
// ClassicBikes is derived (total minus e-bikes) and clamped to zero when
// the feeds disagree; RawClassicBikes keeps the unclamped value and
// Anomalous marks the record so filters can exclude it.
type Station struct {
	ID              string  `json:"station_id"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	EBikes          int     `json:"ebikes_available"`
	ClassicBikes    int     `json:"classic_bikes_available"`
	RawClassicBikes int     `json:"-"`
	Anomalous       bool    `json:"anomalous,omitempty"`
	MatchedBikes    int     `json:"matched_bikes"`
	Distance        float64 `json:"distance"`
}

// Diagnostics summarizes feed irregularities observed during one pipeline run
type Diagnostics struct {
	UnmatchedStations       int `json:"unmatched_stations"`
	AnomalousRecords        int `json:"anomalous_records"`
	MalformedRecordsSkipped int `json:"malformed_records_skipped"`
	DuplicateStatusRecords  int `json:"duplicate_status_records"`
}
