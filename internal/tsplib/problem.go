// Package tsplib reads and writes the text formats exchanged with the
// external tour solver: the TSPLIB problem description and the cycle file.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/woozymasta/ctok/internal/apperr"
	"github.com/woozymasta/ctok/internal/coords"
	"github.com/woozymasta/ctok/internal/geo"
)

// Fixed header values of a generated problem.
const (
	ProblemType    = "TSP"
	ProblemComment = "Generated by CtoK writeTSPFile"
	EdgeWeightType = "EUC_2D"
	NodeSection    = "NODE_COORD_SECTION"
)

// DefaultPrecision is the number of significant digits written per value.
const DefaultPrecision = 6

// ProblemWriter emits a problem description for a coordinate set.
type ProblemWriter struct {
	// Precision in significant digits, %g style. Zero means DefaultPrecision,
	// a negative value writes the shortest exact representation.
	Precision int
}

// DeriveName strips any directory and extension from path.
func DeriveName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Write emits the header followed by one "<index> <lon> <lat>" line per
// coordinate, index 1-based. Longitude comes first: the solver reads x, y.
func (p ProblemWriter) Write(w io.Writer, name string, set *coords.Set) error {
	bw := bufio.NewWriter(w)
	n := set.Len()

	fmt.Fprintf(bw, "NAME: %s%d\n", name, n)
	fmt.Fprintf(bw, "TYPE: %s\n", ProblemType)
	fmt.Fprintf(bw, "COMMENT: %s\n", ProblemComment)
	fmt.Fprintf(bw, "DIMENSION: %d\n", n)
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE: %s\n", EdgeWeightType)
	fmt.Fprintf(bw, "%s\n", NodeSection)

	for i := 0; i < n; i++ {
		c := set.At(i)
		fmt.Fprintf(bw, "%d %s %s\n", i+1, p.format(c.Lon), p.format(c.Lat))
	}

	return bw.Flush()
}

func (p ProblemWriter) format(v float64) string {
	prec := p.Precision
	if prec == 0 {
		prec = DefaultPrecision
	}

	return strconv.FormatFloat(v, 'g', prec, 64)
}

// Problem is a parsed problem description.
type Problem struct {
	Name      string
	Dimension int
	// Points in node order, converted back to lat/lon.
	Points []geo.Coordinate
}

// ReadProblem parses a problem description written by ProblemWriter.
// Unknown header keys are ignored; node lines must be "<index> <x> <y>"
// with consecutive 1-based indices.
func ReadProblem(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	p := &Problem{Dimension: -1}
	inNodes := false
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == "EOF" {
			break
		}

		if !inNodes {
			if text == NodeSection {
				inNodes = true
				continue
			}
			key, value, ok := strings.Cut(text, ":")
			if !ok {
				return nil, apperr.Formatf("problem header at line %d: %q", line, text)
			}
			value = strings.TrimSpace(value)
			switch strings.TrimSpace(key) {
			case "NAME":
				p.Name = value
			case "DIMENSION":
				d, err := strconv.Atoi(value)
				if err != nil {
					return nil, apperr.Wrapf(err, apperr.ErrFormat, "problem dimension at line %d", line)
				}
				p.Dimension = d
			}
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, apperr.Formatf("node at line %d: want 3 fields, got %d", line, len(fields))
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.ErrFormat, "node index at line %d", line)
		}
		if idx != len(p.Points)+1 {
			return nil, apperr.Formatf("node at line %d: index %d out of sequence", line, idx)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.ErrFormat, "node x at line %d", line)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.ErrFormat, "node y at line %d", line)
		}
		p.Points = append(p.Points, geo.NewCoordinate(y, x))
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrapf(err, apperr.ErrIO, "read problem")
	}

	if !inNodes {
		return nil, apperr.Formatf("problem has no %s", NodeSection)
	}
	if p.Dimension >= 0 && p.Dimension != len(p.Points) {
		return nil, apperr.Consistencyf("problem dimension %d, found %d nodes", p.Dimension, len(p.Points))
	}

	return p, nil
}
