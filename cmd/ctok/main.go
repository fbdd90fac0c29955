// Command ctok converts a csv file of decimal degree coordinates into a
// Concorde TSP problem, and a Concorde cycle file back into a KML tour.
package main

import (
	"os"

	"github.com/woozymasta/ctok/internal/config"
	"github.com/woozymasta/ctok/internal/logger"
	"github.com/woozymasta/ctok/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Args struct {
		Input string `positional-arg-name:"INPUT" description:"Input base path; reads INPUT.csv and INPUT.cyc"`
	} `positional-args:"yes" required:"yes"`

	ConfigFile    string `short:"c" long:"config" env:"CTOK_CONFIG" description:"Path to configuration file"`
	SummaryFormat string `long:"summary-format" description:"Summary format" choice:"json" choice:"yaml" default:"json"`
	NoPoints      bool   `short:"n" long:"no-points" description:"KML file omits points"`
	NoPointsAlt   bool   `short:"N" hidden:"true"`
	Problem       bool   `short:"o" long:"tsp"       description:"Output a Concorde TSP input file created from the csv input file"`
	ProblemAlt    bool   `short:"O" hidden:"true"`
	GeoJSON       bool   `long:"geojson" description:"Also write the tour as GeoJSON"`
	Preview       bool   `long:"preview" description:"Also write a WebP preview of the tour"`
	Summary       bool   `long:"summary" description:"Write a run summary file"`
	Minify        bool   `long:"minify"  description:"Minify the KML output"`
}

func parseOptions(args []string) (*Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] INPUT"
	_, err := parser.ParseArgs(args)

	return &opts, err
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
	}

	runner := processor.NewRunner(cfg, opts.processorOptions())

	mode := "track"
	run := runner.RenderTour
	if opts.problemMode() {
		mode = "problem"
		run = runner.BuildProblem
	}

	log.Debug().
		Str("input", opts.Args.Input).
		Str("mode", mode).
		Msg("Starting conversion")

	if err := run(opts.Args.Input); err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("Conversion failed")
		os.Exit(1)
	}
}

func (o *Options) processorOptions() processor.Options {
	return processor.Options{
		Points:        !(o.NoPoints || o.NoPointsAlt),
		Minify:        o.Minify,
		GeoJSON:       o.GeoJSON,
		Preview:       o.Preview,
		Summary:       o.Summary,
		SummaryFormat: o.SummaryFormat,
	}
}

func (o *Options) problemMode() bool {
	return o.Problem || o.ProblemAlt
}
