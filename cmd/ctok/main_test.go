package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := parseOptions([]string{"data/points"})

		require.NoError(t, err)
		assert.Equal(t, "data/points", opts.Args.Input)
		assert.False(t, opts.problemMode())
		assert.True(t, opts.processorOptions().Points)
		assert.Equal(t, "json", opts.SummaryFormat)
		assert.Equal(t, "info", opts.Logger.Level)
	})

	t.Run("trailing flags in either case", func(t *testing.T) {
		for _, args := range [][]string{
			{"points", "-n", "-o"},
			{"points", "-N", "-O"},
			{"points", "-o", "-N"},
		} {
			opts, err := parseOptions(args)

			require.NoError(t, err)
			assert.Equal(t, "points", opts.Args.Input)
			assert.True(t, opts.problemMode(), args)
			assert.False(t, opts.processorOptions().Points, args)
		}
	})

	t.Run("extras", func(t *testing.T) {
		opts, err := parseOptions([]string{"--geojson", "--preview", "--summary", "--summary-format", "yaml", "--minify", "points"})

		require.NoError(t, err)
		p := opts.processorOptions()
		assert.True(t, p.GeoJSON)
		assert.True(t, p.Preview)
		assert.True(t, p.Summary)
		assert.True(t, p.Minify)
		assert.Equal(t, "yaml", p.SummaryFormat)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := parseOptions(nil)
		assert.Error(t, err)
	})

	t.Run("unknown summary format", func(t *testing.T) {
		_, err := parseOptions([]string{"--summary-format", "xml", "points"})
		assert.Error(t, err)
	})
}
