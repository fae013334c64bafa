package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{name: "same day counts as one", start: "2026-04-01", end: "2026-04-01", expected: 1},
		{name: "two calendar days", start: "2026-04-01", end: "2026-04-02", expected: 2},
		{name: "inclusive of both endpoints", start: "2026-04-01", end: "2026-04-03", expected: 3},
		{name: "across month boundary", start: "2026-04-29", end: "2026-05-02", expected: 4},
		{name: "inverted range clamps to one day", start: "2026-04-05", end: "2026-04-01", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalDays(date(tt.start), date(tt.end)))
		})
	}
}

func TestRentalDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 4, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 4, 2, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, RentalDays(start, end))
}

func TestParseDeliveryMethod(t *testing.T) {
	m, err := ParseDeliveryMethod("store")
	require.NoError(t, err)
	assert.Equal(t, MethodStore, m)

	m, err = ParseDeliveryMethod("address")
	require.NoError(t, err)
	assert.Equal(t, MethodAddress, m)

	_, err = ParseDeliveryMethod("drone")
	assert.Error(t, err)

	_, err = ParseDeliveryMethod("")
	assert.Error(t, err)
}

func TestDeliveryLeg_Coordinate(t *testing.T) {
	lat, lng := 35.6812, 139.7671

	leg := DeliveryLeg{Method: MethodAddress, Lat: &lat, Lng: &lng}
	coord := leg.Coordinate()
	require.NotNil(t, coord)
	assert.Equal(t, lat, coord.Lat)
	assert.Equal(t, lng, coord.Lng)

	assert.Nil(t, DeliveryLeg{Method: MethodAddress, Lat: &lat}.Coordinate())
	assert.Nil(t, DeliveryLeg{Method: MethodStore}.Coordinate())
}
