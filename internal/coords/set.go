// Package coords loads coordinate records and keeps them as an ordered,
// deduplicated set.
package coords

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/ctok/internal/apperr"
	"github.com/woozymasta/ctok/internal/geo"

	"github.com/rs/zerolog/log"
)

// Set is an ordered collection of coordinates in source order.
// It is only ever shrunk by Dedup and never reordered.
type Set struct {
	points []geo.Coordinate
}

// NewSet builds a Set from points, copying the slice.
func NewSet(points []geo.Coordinate) *Set {
	return &Set{points: append([]geo.Coordinate(nil), points...)}
}

// Load reads "latitude,longitude" records from r. Blank lines are skipped;
// any other record must hold exactly two finite decimal numbers.
func Load(r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	s := &Set{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, apperr.Wrapf(perr.Err, apperr.ErrFormat, "coordinate record at line %d", perr.Line)
			}
			return nil, apperr.Wrapf(err, apperr.ErrIO, "read coordinate records")
		}

		line, _ := cr.FieldPos(0)
		c, err := parseRecord(rec)
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.ErrFormat, "coordinate record at line %d %q", line, strings.Join(rec, ","))
		}
		s.points = append(s.points, c)
	}

	return s, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrapf(err, apperr.ErrIO, "unable to read input file %q", path)
	}
	defer func() { _ = f.Close() }()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Int("count", s.Len()).Msg("Coordinates loaded")
	return s, nil
}

func parseRecord(rec []string) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return geo.Coordinate{}, err
	}

	c := geo.NewCoordinate(lat, lon)
	if !c.IsFinite() {
		return geo.Coordinate{}, errors.New("non-finite value")
	}

	return c, nil
}

// Dedup removes every coordinate equal to an earlier one, keeping first
// occurrences in their original order. It returns how many were removed.
func (s *Set) Dedup() int {
	seen := make(map[geo.Coordinate]struct{}, len(s.points))
	kept := s.points[:0]

	for _, c := range s.points {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		kept = append(kept, c)
	}

	removed := len(s.points) - len(kept)
	clear(s.points[len(kept):])
	s.points = kept

	return removed
}

// Len returns the number of coordinates.
func (s *Set) Len() int { return len(s.points) }

// At returns the i-th coordinate.
func (s *Set) At(i int) geo.Coordinate { return s.points[i] }

// Points returns a copy of the coordinates in set order.
func (s *Set) Points() []geo.Coordinate {
	return append([]geo.Coordinate(nil), s.points...)
}
