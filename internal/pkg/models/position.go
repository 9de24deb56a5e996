package models

import "time"

// Coordinate is a WGS84 latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PositionSample is one reading in a job's location stream
type PositionSample struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// Coordinate returns the sample's coordinate pair
func (s PositionSample) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// PositionReport is the event a provider device publishes for every fix,
// from both the push feed and the fallback ticker. The store deduplicates,
// so redundant reports are safe.
type PositionReport struct {
	Protocol   string         `json:"protocol"`
	ProviderID string         `json:"provider_id"`
	Sample     PositionSample `json:"sample"`
	Accuracy   float64        `json:"accuracy,omitempty"`
}

// Freshness is derived from the age of a stream's last sample, never stored
type Freshness string

const (
	FreshnessActive   Freshness = "ACTIVE"
	FreshnessInactive Freshness = "INACTIVE"
	FreshnessUnknown  Freshness = "UNKNOWN"
)

// FreshnessThreshold is the maximum sample age considered live
const FreshnessThreshold = 20 * time.Second

// TrackRetention is how long position samples are kept before pruning
const TrackRetention = 24 * time.Hour

// FreshnessOf derives a freshness signal from the last sample timestamp.
func FreshnessOf(last *PositionSample, now time.Time) Freshness {
	if last == nil {
		return FreshnessUnknown
	}
	if now.Sub(last.Timestamp) <= FreshnessThreshold {
		return FreshnessActive
	}
	return FreshnessInactive
}
