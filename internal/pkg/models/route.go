package models

// RouteLeg is the result of one directions query between two coordinates
type RouteLeg struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	Geometry        string `json:"geometry"` // encoded polyline
}

// Route is a computed driving route from the provider to the pickup and,
// when present, on to the dropoff. DistanceMeters comes from the
// multi-waypoint query; DurationSeconds is the sum of independently
// computed leg durations.
type Route struct {
	Legs            []RouteLeg `json:"legs"`
	DistanceMeters  int        `json:"distance_meters"`
	DurationSeconds int        `json:"duration_seconds"`
	Geometry        string     `json:"geometry"`
}

// Address holds reverse-geocoded address components
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
}
