// Package geo handles geographic data structures and distance calculations.
package geo

import "math"

// Coordinate is a decimal-degree position. Equality is exact value equality.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// NewCoordinate builds a Coordinate from latitude and longitude.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

// IsFinite reports whether both components are finite numbers.
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0)
}

// LonLat returns the coordinate as [lon, lat], the order used by GeoJSON and KML.
func (c Coordinate) LonLat() []float64 { return []float64{c.Lon, c.Lat} }

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return (deg / 180.0) * math.Pi }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return (rad / math.Pi) * 180.0 }
