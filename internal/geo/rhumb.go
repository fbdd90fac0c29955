package geo

import "math"

// DefaultBearingTolerance is the half-width, in radians, of the window around
// 90 and 270 degrees where the course-based formula is replaced by the
// east-west one. It is a heuristic singularity guard, not an exact test.
const DefaultBearingTolerance = 1e-6

// Model computes rhumb line (constant bearing) distances.
// The zero value is usable and falls back to the package defaults.
type Model struct {
	// Tolerance around the 90/270 degree courses, radians.
	Tolerance float64
	// KmPerNm converts the nautical mile result into kilometers.
	KmPerNm float64
}

// Mod is a floor based modulo that stays non-negative for negative dividends.
func Mod(y, x float64) float64 {
	if y >= 0 {
		return y - x*math.Floor(y/x)
	}

	return y + x*(math.Floor(-(y/x))+1.0)
}

// TrueCourse returns the rhumb line course from a to b in radians, in [0, 2π).
// Longitude difference is taken as a-b (west positive).
func TrueCourse(a, b Coordinate) float64 {
	dLon := DegToRad(a.Lon - b.Lon)
	dPhi := math.Log(math.Tan(DegToRad(b.Lat)/2.0+math.Pi/4.0) / math.Tan(DegToRad(a.Lat)/2.0+math.Pi/4.0))

	return Mod(math.Atan2(dLon, dPhi), 2.0*math.Pi)
}

// Distance returns the rhumb line distance from a to b in kilometers.
// The result depends on direction through the course branch; only
// Distance(a, a) == 0 is guaranteed.
func (m Model) Distance(a, b Coordinate) float64 {
	tol := m.Tolerance
	if tol <= 0 {
		tol = DefaultBearingTolerance
	}
	kmPerNm := m.KmPerNm
	if kmPerNm <= 0 {
		kmPerNm = KmPerNm
	}

	tc := TrueCourse(a, b)

	var nm float64
	if math.Abs(tc-math.Pi/2) < tol || math.Abs(tc-3*math.Pi/2) < tol {
		nm = 60.0 * math.Abs(b.Lon-a.Lon) * math.Cos(DegToRad(a.Lat))
	} else {
		nm = 60.0 * ((b.Lat - a.Lat) / math.Cos(tc))
	}

	return nm * kmPerNm
}

// Rhumb is Model{}.Distance.
func Rhumb(a, b Coordinate) float64 {
	return Model{}.Distance(a, b)
}
