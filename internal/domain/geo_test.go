package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	tokyoStation = Coordinate{Lat: 35.6812, Lng: 139.7671}
	shinjuku     = Coordinate{Lat: 35.6896, Lng: 139.7006}
	osakaStation = Coordinate{Lat: 34.7024, Lng: 135.4959}
)

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(tokyoStation, tokyoStation))
}

func TestHaversineKm_Symmetric(t *testing.T) {
	ab := HaversineKm(tokyoStation, osakaStation)
	ba := HaversineKm(osakaStation, tokyoStation)

	assert.InDelta(t, ab, ba, 1e-9)
}

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name       string
		from, to   Coordinate
		expectedKm float64
		deltaKm    float64
	}{
		{
			name:       "tokyo to shinjuku",
			from:       tokyoStation,
			to:         shinjuku,
			expectedKm: 6.1,
			deltaKm:    0.5,
		},
		{
			name:       "tokyo to osaka",
			from:       tokyoStation,
			to:         osakaStation,
			expectedKm: 403,
			deltaKm:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.from, tt.to)
			assert.InDelta(t, tt.expectedKm, got, tt.deltaKm)
		})
	}
}

func TestDistanceBetween(t *testing.T) {
	t.Run("both endpoints known", func(t *testing.T) {
		d := DistanceBetween(&tokyoStation, &shinjuku)

		assert.True(t, d.Known)
		assert.Greater(t, d.Km, 0.0)
	})

	t.Run("nil endpoint yields unknown distance", func(t *testing.T) {
		assert.False(t, DistanceBetween(nil, &shinjuku).Known)
		assert.False(t, DistanceBetween(&tokyoStation, nil).Known)
		assert.False(t, DistanceBetween(nil, nil).Known)
	})
}
