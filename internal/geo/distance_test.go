package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expected   float64
		tolerance  float64
	}{
		{
			name: "same point is zero",
			lat1: 19.0760, lon1: 72.8777,
			lat2: 19.0760, lon2: 72.8777,
			expected: 0, tolerance: 0.0001,
		},
		{
			name: "Mumbai to Pune",
			lat1: 19.0760, lon1: 72.8777,
			lat2: 18.5204, lon2: 73.8567,
			expected: 120, tolerance: 5,
		},
		{
			name: "Gateway of India to Marine Drive",
			lat1: 18.9219, lon1: 72.8347,
			lat2: 18.9432, lon2: 72.8236,
			expected: 2.6, tolerance: 0.3,
		},
		{
			name: "equator quarter circumference",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 90,
			expected: 10007, tolerance: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	forward := DistanceKm(19.0760, 72.8777, 20.0258, 75.1780)
	backward := DistanceKm(20.0258, 75.1780, 19.0760, 72.8777)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 72.8777, 19.0760, 72.8777)))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(19.0760, 72.8777))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.True(t, ValidCoordinates(90, -180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
}
