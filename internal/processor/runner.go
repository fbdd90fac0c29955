package processor

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/ctok/internal/apperr"
	"github.com/woozymasta/ctok/internal/config"
	"github.com/woozymasta/ctok/internal/geo"
	"github.com/woozymasta/ctok/internal/kml"
	"github.com/woozymasta/ctok/internal/preview"
	"github.com/woozymasta/ctok/internal/tour"
	"github.com/woozymasta/ctok/internal/tsplib"

	"github.com/rs/zerolog/log"
)

// Options select the optional outputs.
type Options struct {
	SummaryFormat string // "json" or "yaml"
	Points        bool   // point placemarks in the KML
	Minify        bool
	GeoJSON       bool
	Preview       bool
	Summary       bool
}

// Runner executes one conversion. Report lines go to Out.
type Runner struct {
	Config  *config.Config
	Out     io.Writer
	Options Options
}

// NewRunner returns a Runner reporting to stdout.
func NewRunner(cfg *config.Config, opts Options) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Runner{Config: cfg, Out: os.Stdout, Options: opts}
}

func (r *Runner) printf(format string, a ...any) {
	if r.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(r.Out, format, a...)
}

// BuildProblem converts <base>.csv into the solver input <base>.tsp.
func (r *Runner) BuildProblem(input string) error {
	base := BasePath(input)

	set, removed, err := r.loadCoordinates(base)
	if err != nil {
		return err
	}

	r.printf("Number of coordinates: %d\n", set.Len())

	name := tsplib.DeriveName(base)
	path := base + ExtProblem
	pw := tsplib.ProblemWriter{Precision: r.Config.CoordinatePrecision}
	if err := writeFile(path, func(w io.Writer) error { return pw.Write(w, name, set) }); err != nil {
		return err
	}

	log.Info().
		Str("path", path).
		Int("dimension", set.Len()).
		Int("removed", removed).
		Msg("Problem file written")

	if r.Options.Summary {
		return r.writeSummary(base, newSummary(name, base, set, removed))
	}

	return nil
}

// RenderTour pairs <base>.csv with the solver cycle <base>.cyc, reports the
// tour cost and writes <base>.kml plus any optional outputs.
func (r *Runner) RenderTour(input string) error {
	base := BasePath(input)

	set, removed, err := r.loadCoordinates(base)
	if err != nil {
		return err
	}

	cyclePath := base + ExtCycle
	f, err := os.Open(cyclePath)
	if err != nil {
		return apperr.Wrapf(err, apperr.ErrIO, "unable to read input file %q", cyclePath)
	}
	t, err := tsplib.ParseCycle(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	if len(t) != set.Len() {
		r.printf("Number of csv file coordinates (%d) doesn't match cycle file (%d).\n", set.Len(), len(t))
	}
	eval := r.Config.Evaluator()
	cost, err := eval.Cost(t, set)
	if err != nil {
		return err
	}

	r.printf("Number of coordinates: %d\n", set.Len())
	r.printf("Total distance: %.1fnm \nTour path: %s\n", eval.Distance(cost, geo.NauticalMiles), t.Path())

	name := tsplib.DeriveName(base)
	points := set.Points()

	trackPath := base + ExtTrack
	err = writeFile(trackPath, func(w io.Writer) error {
		return kml.RenderTrack(w, points, t, kml.Options{
			Name:      name,
			LineWidth: r.Config.LineWidth,
			Points:    r.Options.Points,
			Minify:    r.Options.Minify,
		})
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("path", trackPath).
		Int("count", set.Len()).
		Int("cost", cost).
		Bool("points", r.Options.Points).
		Msg("Track written")

	if r.Options.GeoJSON {
		path := base + ExtGeoJSON
		if err := saveGeoJSON(path, geo.TrackFeatures(t.Coordinates(set), points, r.Options.Points)); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("GeoJSON written")
	}

	if r.Options.Preview {
		if err := r.writePreview(base+ExtPreview, points, t); err != nil {
			return err
		}
	}

	if r.Options.Summary {
		s := newSummary(name, base, set, removed)
		s.addTour(t, set, cost, eval)
		return r.writeSummary(base, s)
	}

	return nil
}

func (r *Runner) writePreview(path string, points []geo.Coordinate, t tour.Tour) error {
	opts := preview.Options{
		Size:     r.Config.Preview.Size,
		Quality:  r.Config.Preview.Quality,
		Lossless: r.Config.Preview.Lossless,
		Points:   r.Options.Points,
	}
	img := preview.Render(points, t, opts)

	err := writeFile(path, func(w io.Writer) error { return preview.Encode(w, img, opts) })
	if err != nil {
		return err
	}

	log.Info().Str("path", path).Int("size", opts.Size).Msg("Preview written")
	return nil
}
