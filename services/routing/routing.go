package routing

import (
	"context"

	"googlemaps.github.io/maps"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// DirectionsAPI is the slice of the maps client the route client needs,
// kept narrow so tests can stand in for the remote service.
type DirectionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// RouteClient computes driving routes and resolves addresses for the
// dispatch console and the finalizer.
type RouteClient interface {
	// ComputeRoute returns the provider's route to the pickup and, when a
	// dropoff is present, on to the dropoff. With a dropoff the total
	// distance and geometry come from a single multi-waypoint query while
	// the displayed duration is the sum of independently computed leg
	// durations. Any failed query fails the whole computation.
	ComputeRoute(ctx context.Context, provider, pickup models.Coordinate, dropoff *models.Coordinate) (*models.Route, error)

	// ReverseGeocode resolves a coordinate to address components.
	ReverseGeocode(ctx context.Context, coord models.Coordinate) (models.Address, error)
}
