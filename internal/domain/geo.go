package domain

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Distance is a great-circle distance that may be unknown. Unknown distances
// are first-class: fee resolution maps them to a zero fee instead of failing.
type Distance struct {
	Km    float64
	Known bool
}

// UnknownDistance returns the distance used when one of the endpoints has no
// coordinates.
func UnknownDistance() Distance {
	return Distance{}
}

// KnownDistance wraps a computed kilometre value.
func KnownDistance(km float64) Distance {
	return Distance{Km: km, Known: true}
}

// HaversineKm computes the great-circle distance between two coordinates in
// kilometres.
func HaversineKm(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceBetween computes the distance between two optional coordinates.
// A nil endpoint yields an unknown distance.
func DistanceBetween(a, b *Coordinate) Distance {
	if a == nil || b == nil {
		return UnknownDistance()
	}
	return KnownDistance(HaversineKm(*a, *b))
}
