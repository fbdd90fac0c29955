package geo_test

import (
	"math"
	"testing"

	"github.com/woozymasta/ctok/internal/geo"

	"github.com/stretchr/testify/assert"
)

func TestMod(t *testing.T) {
	tests := []struct {
		name string
		y, x float64
		want float64
	}{
		{"positive", 7, 3, 1},
		{"zero", 0, 3, 0},
		{"negative", -1, 3, 2},
		{"negative angle", -math.Pi / 2, 2 * math.Pi, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, geo.Mod(tt.y, tt.x), 1e-12)
		})
	}
}

func TestTrueCourse(t *testing.T) {
	origin := geo.NewCoordinate(40, -75)

	t.Run("due north", func(t *testing.T) {
		assert.InDelta(t, 0, geo.TrueCourse(origin, geo.NewCoordinate(41, -75)), 1e-12)
	})

	t.Run("east and west hit the singular courses", func(t *testing.T) {
		assert.InDelta(t, 3*math.Pi/2, geo.TrueCourse(origin, geo.NewCoordinate(40, -74)), 1e-9)
		assert.InDelta(t, math.Pi/2, geo.TrueCourse(geo.NewCoordinate(40, -74), origin), 1e-9)
	})

	t.Run("range", func(t *testing.T) {
		tc := geo.TrueCourse(origin, geo.NewCoordinate(41, -76))
		assert.GreaterOrEqual(t, tc, 0.0)
		assert.Less(t, tc, 2*math.Pi)
		assert.InDelta(t, 0.6501126925209909, tc, 1e-12)
	})
}

func TestRhumb(t *testing.T) {
	a := geo.NewCoordinate(40, -75)

	t.Run("same point is zero", func(t *testing.T) {
		for _, c := range []geo.Coordinate{a, geo.NewCoordinate(0, 0), geo.NewCoordinate(-33.9, 151.2)} {
			assert.Zero(t, geo.Rhumb(c, c))
		}
	})

	t.Run("along a meridian", func(t *testing.T) {
		assert.InDelta(t, 111.12, geo.Rhumb(a, geo.NewCoordinate(41, -75)), 1e-9)
	})

	t.Run("along a parallel uses the east-west branch", func(t *testing.T) {
		b := geo.NewCoordinate(40, -74)
		assert.InDelta(t, 85.12285851938084, geo.Rhumb(a, b), 1e-9)
		assert.InDelta(t, 85.12285851938084, geo.Rhumb(b, a), 1e-9)
	})

	t.Run("diagonal", func(t *testing.T) {
		assert.InDelta(t, 139.59525530105827, geo.Rhumb(a, geo.NewCoordinate(41, -76)), 1e-9)
		assert.InDelta(t, 416.44735122343843, geo.Rhumb(a, geo.NewCoordinate(43, -78)), 1e-9)
	})
}

func TestModelOverrides(t *testing.T) {
	a := geo.NewCoordinate(40, -75)
	b := geo.NewCoordinate(41, -75)

	m := geo.Model{KmPerNm: 1}
	assert.InDelta(t, 60.0, m.Distance(a, b), 1e-9)

	// A huge window forces the east-west branch even for a northbound leg.
	wide := geo.Model{Tolerance: 2 * math.Pi}
	assert.InDelta(t, 0, wide.Distance(a, b), 1e-9)
}

func TestGreatCircle(t *testing.T) {
	a := geo.NewCoordinate(40, -75)

	assert.Zero(t, geo.GreatCircle(a, a))
	assert.InDelta(t, 111.19492664455873, geo.GreatCircle(a, geo.NewCoordinate(41, -75)), 1e-6)
	assert.InDelta(t, 416.7072442670607, geo.GreatCircle(a, geo.NewCoordinate(43, -78)), 1e-6)
}

func TestFromKm(t *testing.T) {
	assert.InDelta(t, 1.0, geo.FromKm(1.852, geo.NauticalMiles, 0), 1e-12)
	assert.InDelta(t, 1.0, geo.FromKm(1.609347, geo.StatuteMiles, 0), 1e-12)
	assert.InDelta(t, 5.0, geo.FromKm(5, geo.Kilometers, 0), 1e-12)
	assert.InDelta(t, 2.0, geo.FromKm(4, geo.NauticalMiles, 2), 1e-12)
}

func TestCoordinateIsFinite(t *testing.T) {
	assert.True(t, geo.NewCoordinate(1, 2).IsFinite())
	assert.False(t, geo.NewCoordinate(math.NaN(), 2).IsFinite())
	assert.False(t, geo.NewCoordinate(1, math.Inf(-1)).IsFinite())
}
