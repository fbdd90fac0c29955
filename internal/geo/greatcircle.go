package geo

import "github.com/golang/geo/s2"

// EarthRadiusKm is the mean earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// GreatCircle returns the great-circle distance between a and b in kilometers.
// It is reported next to the rhumb line total as a shortest-path reference.
func GreatCircle(a, b Coordinate) float64 {
	p := s2.LatLngFromDegrees(a.Lat, a.Lon)
	q := s2.LatLngFromDegrees(b.Lat, b.Lon)

	return p.Distance(q).Radians() * EarthRadiusKm
}
