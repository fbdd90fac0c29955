// Package tour evaluates solver cycles over a coordinate set.
package tour

import (
	"strconv"
	"strings"

	"github.com/woozymasta/ctok/internal/apperr"
	"github.com/woozymasta/ctok/internal/coords"
	"github.com/woozymasta/ctok/internal/geo"
)

// DefaultScale multiplies each edge distance before it is truncated to an
// integer edge weight.
const DefaultScale = 10.0

// Tour is a cyclic ordering of zero-based indices into a coordinate set.
// The edge from the last index back to the first is implicit.
type Tour []int

// Validate checks that t is a permutation of 0..size-1.
func (t Tour) Validate(size int) error {
	if len(t) != size {
		return apperr.Consistencyf("number of csv file coordinates (%d) doesn't match cycle file (%d)", size, len(t))
	}

	seen := make([]bool, size)
	for pos, idx := range t {
		if idx < 0 || idx >= size {
			return apperr.Consistencyf("cycle entry %d: index %d out of range [0, %d)", pos+1, idx, size)
		}
		if seen[idx] {
			return apperr.Consistencyf("cycle entry %d: index %d repeated", pos+1, idx)
		}
		seen[idx] = true
	}

	return nil
}

// Path renders the closed tour with 1-based indices, the first index
// repeated at the end: "1 2 3 4 1".
func (t Tour) Path() string {
	if len(t) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, idx := range t {
		sb.WriteString(strconv.Itoa(idx + 1))
		sb.WriteByte(' ')
	}
	sb.WriteString(strconv.Itoa(t[0] + 1))

	return sb.String()
}

// Coordinates returns the set's coordinates in tour order, without closing.
func (t Tour) Coordinates(set *coords.Set) []geo.Coordinate {
	out := make([]geo.Coordinate, len(t))
	for i, idx := range t {
		out[i] = set.At(idx)
	}

	return out
}

// Evaluator computes solver compatible tour costs.
type Evaluator struct {
	Model geo.Model
	// Scale applied to each edge before truncation; zero means DefaultScale.
	Scale float64
}

// ScaleFactor returns the effective per-edge scale.
func (e Evaluator) ScaleFactor() float64 {
	if e.Scale <= 0 {
		return DefaultScale
	}

	return e.Scale
}

// Cost sums the truncated, scaled rhumb line length of every tour edge,
// including the closing edge between the first and last index, which is
// measured from the first one.
// Truncation happens per edge, matching integer edge weights.
func (e Evaluator) Cost(t Tour, set *coords.Set) (int, error) {
	if err := t.Validate(set.Len()); err != nil {
		return 0, err
	}
	if len(t) == 0 {
		return 0, nil
	}

	scale := e.ScaleFactor()
	edge := func(from, to int) int {
		return int(e.Model.Distance(set.At(from), set.At(to)) * scale)
	}

	cost := edge(t[0], t[len(t)-1])
	for i := 0; i < len(t)-1; i++ {
		cost += edge(t[i], t[i+1])
	}

	return cost, nil
}

// Kilometers converts an integer cost back into kilometers.
func (e Evaluator) Kilometers(cost int) float64 {
	return float64(cost) / e.ScaleFactor()
}

// Distance converts an integer cost into the given unit.
func (e Evaluator) Distance(cost int, u geo.Unit) float64 {
	return geo.FromKm(e.Kilometers(cost), u, e.Model.KmPerNm)
}
