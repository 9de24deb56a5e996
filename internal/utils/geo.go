package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// MarkerCellPrecision is the geohash precision used for live-map marker
// cells; ~150m cells group nearby providers for console-side clustering.
const MarkerCellPrecision uint = 7

// EncodeCell converts a coordinate to a geohash cell string
func EncodeCell(coord models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, precision)
}

// DecodeCell converts a geohash cell string back to its center coordinate
func DecodeCell(cell string) models.Coordinate {
	lat, lng := geohash.Decode(cell)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// CellNeighbors returns the neighboring cells of a geohash cell
func CellNeighbors(cell string) []string {
	return geohash.Neighbors(cell)
}

// HaversineKm calculates the great-circle distance between two coordinates
// in kilometers
func HaversineKm(a, b models.Coordinate) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
