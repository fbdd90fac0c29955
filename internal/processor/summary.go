package processor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/woozymasta/ctok/internal/coords"
	"github.com/woozymasta/ctok/internal/geo"
	"github.com/woozymasta/ctok/internal/tour"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-polyline"
	"gopkg.in/yaml.v3"
)

// Summary describes one conversion run.
type Summary struct {
	Tour              *TourSummary `yaml:"tour,omitempty" json:"tour,omitempty"`
	Name              string       `yaml:"name" json:"name"`
	Input             string       `yaml:"input" json:"input"`
	Coordinates       int          `yaml:"coordinates" json:"coordinates"`
	DuplicatesRemoved int          `yaml:"duplicates_removed" json:"duplicates_removed"`
}

// TourSummary holds the cost figures of an evaluated tour.
type TourSummary struct {
	Polyline      string  `yaml:"polyline" json:"polyline"`
	Path          []int   `yaml:"path" json:"path"`
	Cost          int     `yaml:"cost" json:"cost"`
	ScaleFactor   float64 `yaml:"scale_factor" json:"scale_factor"`
	Kilometers    float64 `yaml:"km" json:"km"`
	NauticalMiles float64 `yaml:"nm" json:"nm"`
	StatuteMiles  float64 `yaml:"sm" json:"sm"`
	// GreatCircleKm is the same cycle measured along great circles.
	GreatCircleKm float64 `yaml:"great_circle_km" json:"great_circle_km"`
}

func newSummary(name, base string, set *coords.Set, removed int) *Summary {
	return &Summary{
		Name:              name,
		Input:             base + ExtCoordinates,
		Coordinates:       set.Len(),
		DuplicatesRemoved: removed,
	}
}

func (s *Summary) addTour(t tour.Tour, set *coords.Set, cost int, eval tour.Evaluator) {
	path := make([]int, 0, len(t)+1)
	closed := make([][]float64, 0, len(t)+1)
	var gc float64

	for i, idx := range t {
		path = append(path, idx+1)
		c := set.At(idx)
		closed = append(closed, []float64{c.Lat, c.Lon})
		gc += geo.GreatCircle(c, set.At(t[(i+1)%len(t)]))
	}
	if len(t) > 0 {
		path = append(path, t[0]+1)
		closed = append(closed, closed[0])
	}

	s.Tour = &TourSummary{
		Polyline:      string(polyline.EncodeCoords(closed)),
		Path:          path,
		Cost:          cost,
		ScaleFactor:   eval.ScaleFactor(),
		Kilometers:    eval.Kilometers(cost),
		NauticalMiles: eval.Distance(cost, geo.NauticalMiles),
		StatuteMiles:  eval.Distance(cost, geo.StatuteMiles),
		GreatCircleKm: gc,
	}
}

// encodeSummary writes s in the given format.
func encodeSummary(w io.Writer, s *Summary, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}

func (r *Runner) writeSummary(base string, s *Summary) error {
	format := r.Options.SummaryFormat
	if format == "" {
		format = "json"
	}

	path := base + ExtSummary + "." + format
	if err := writeFile(path, func(w io.Writer) error { return encodeSummary(w, s, format) }); err != nil {
		return err
	}

	log.Info().Str("path", path).Str("format", format).Msg("Summary written")
	return nil
}
