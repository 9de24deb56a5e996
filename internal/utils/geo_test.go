package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name      string
		a         models.Coordinate
		b         models.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			a:         models.Coordinate{Latitude: -23.550520, Longitude: -46.633308},
			b:         models.Coordinate{Latitude: -23.550520, Longitude: -46.633308},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Sao Paulo to Campinas (approximately)",
			a:         models.Coordinate{Latitude: -23.550520, Longitude: -46.633308},
			b:         models.Coordinate{Latitude: -22.905833, Longitude: -47.060833},
			expected:  84.0,
			tolerance: 10.0,
		},
		{
			name:      "Short hop within a city",
			a:         models.Coordinate{Latitude: -23.550520, Longitude: -46.633308},
			b:         models.Coordinate{Latitude: -23.560520, Longitude: -46.643308},
			expected:  1.5,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestEncodeDecodeCell(t *testing.T) {
	coord := models.Coordinate{Latitude: -23.550520, Longitude: -46.633308}

	cell := EncodeCell(coord, MarkerCellPrecision)
	assert.Len(t, cell, int(MarkerCellPrecision))

	decoded := DecodeCell(cell)
	assert.InDelta(t, coord.Latitude, decoded.Latitude, 0.01)
	assert.InDelta(t, coord.Longitude, decoded.Longitude, 0.01)
}

func TestCellNeighbors(t *testing.T) {
	cell := EncodeCell(models.Coordinate{Latitude: -23.550520, Longitude: -46.633308}, MarkerCellPrecision)

	neighbors := CellNeighbors(cell)
	assert.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.NotEqual(t, cell, n)
	}
}
