package client

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/routing"
)

type routeClient struct {
	api     routing.DirectionsAPI
	timeout time.Duration
}

// NewRouteClient creates a route client over an existing directions API
func NewRouteClient(api routing.DirectionsAPI, timeout time.Duration) routing.RouteClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &routeClient{api: api, timeout: timeout}
}

// NewGoogleRouteClient dials the Google Maps API with the configured key
func NewGoogleRouteClient(cfg models.MapsConfig) (routing.RouteClient, error) {
	c, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return NewRouteClient(c, time.Duration(cfg.RequestTimeout)*time.Second), nil
}

func (c *routeClient) ComputeRoute(ctx context.Context, provider, pickup models.Coordinate, dropoff *models.Coordinate) (*models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if dropoff == nil {
		leg, geometry, err := c.queryLeg(ctx, provider, pickup)
		if err != nil {
			return nil, err
		}
		return &models.Route{
			Legs:            []models.RouteLeg{leg},
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			Geometry:        geometry,
		}, nil
	}

	// Total distance and geometry come from one query through the pickup;
	// per-leg travel times come from independent queries so each leg is
	// timed from a standing start.
	total, err := c.queryThrough(ctx, provider, pickup, *dropoff)
	if err != nil {
		return nil, err
	}
	toPickup, _, err := c.queryLeg(ctx, provider, pickup)
	if err != nil {
		return nil, err
	}
	toDropoff, _, err := c.queryLeg(ctx, pickup, *dropoff)
	if err != nil {
		return nil, err
	}

	return &models.Route{
		Legs:            []models.RouteLeg{toPickup, toDropoff},
		DistanceMeters:  total.DistanceMeters,
		DurationSeconds: toPickup.DurationSeconds + toDropoff.DurationSeconds,
		Geometry:        total.Geometry,
	}, nil
}

func (c *routeClient) ReverseGeocode(ctx context.Context, coord models.Coordinate) (models.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	results, err := c.api.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coord.Latitude, Lng: coord.Longitude},
	})
	if err != nil {
		return models.Address{}, fmt.Errorf("failed to reverse geocode: %w", err)
	}
	if len(results) == 0 {
		return models.Address{}, fmt.Errorf("no geocoding result for %f,%f", coord.Latitude, coord.Longitude)
	}

	best := results[0]
	addr := models.Address{Formatted: best.FormattedAddress}
	for _, component := range best.AddressComponents {
		for _, kind := range component.Types {
			switch kind {
			case "route":
				addr.Street = component.LongName
			case "locality", "administrative_area_level_2":
				if addr.City == "" {
					addr.City = component.LongName
				}
			case "postal_code":
				addr.PostalCode = component.LongName
			}
		}
	}
	return addr, nil
}

// queryLeg runs a single origin->destination directions query
func (c *routeClient) queryLeg(ctx context.Context, origin, destination models.Coordinate) (models.RouteLeg, string, error) {
	route, err := c.query(ctx, &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return models.RouteLeg{}, "", err
	}

	leg := models.RouteLeg{Geometry: route.OverviewPolyline.Points}
	for _, l := range route.Legs {
		leg.DistanceMeters += l.Distance.Meters
		leg.DurationSeconds += int(l.Duration.Seconds())
	}
	return leg, route.OverviewPolyline.Points, nil
}

// queryThrough runs one provider->pickup->dropoff query for the combined
// distance and overview geometry
func (c *routeClient) queryThrough(ctx context.Context, origin, via, destination models.Coordinate) (models.Route, error) {
	route, err := c.query(ctx, &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Waypoints:   []string{latLng(via)},
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return models.Route{}, err
	}

	total := models.Route{Geometry: route.OverviewPolyline.Points}
	for _, l := range route.Legs {
		total.DistanceMeters += l.Distance.Meters
		total.DurationSeconds += int(l.Duration.Seconds())
	}
	return total, nil
}

func (c *routeClient) query(ctx context.Context, req *maps.DirectionsRequest) (maps.Route, error) {
	routes, _, err := c.api.Directions(ctx, req)
	if err != nil {
		return maps.Route{}, fmt.Errorf("directions query failed: %w", err)
	}
	if len(routes) == 0 {
		return maps.Route{}, fmt.Errorf("no route between %s and %s", req.Origin, req.Destination)
	}
	return routes[0], nil
}

func latLng(c models.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}
