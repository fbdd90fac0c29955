// Package processor runs the conversions between coordinate files, solver
// files and visualization outputs.
package processor

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/ctok/internal/apperr"
	"github.com/woozymasta/ctok/internal/coords"
	"github.com/woozymasta/ctok/internal/geo"

	"github.com/rs/zerolog/log"
)

// File extensions resolved from the input base path.
const (
	ExtCoordinates = ".csv"
	ExtCycle       = ".cyc"
	ExtProblem     = ".tsp"
	ExtTrack       = ".kml"
	ExtGeoJSON     = ".geojson"
	ExtPreview     = ".webp"
	ExtSummary     = ".summary"
)

// BasePath strips the extension of the last path element, so "run/points",
// "run/points.csv" and "run/points.cyc" all resolve to "run/points".
func BasePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// loadCoordinates reads <base>.csv, removes duplicates and enforces the
// minimum coordinate count.
func (r *Runner) loadCoordinates(base string) (*coords.Set, int, error) {
	set, err := coords.LoadFile(base + ExtCoordinates)
	if err != nil {
		return nil, 0, err
	}

	removed := set.Dedup()
	if removed > 0 {
		r.printf("%d duplicate coordinates removed.\n", removed)
		log.Debug().Int("removed", removed).Msg("Duplicate coordinates removed")
	}

	if set.Len() < r.Config.MinCoordinates {
		r.printf("Insufficient number of coordinates: %d\n", set.Len())
		return nil, removed, apperr.Usagef("insufficient number of coordinates: %d, need at least %d", set.Len(), r.Config.MinCoordinates)
	}

	return set, removed, nil
}

// writeFile creates path and hands it to fill. Close errors are returned.
func writeFile(path string, fill func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperr.Wrapf(err, apperr.ErrIO, "create directory for %q", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return apperr.Wrapf(err, apperr.ErrIO, "error opening output file %q", path)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = apperr.Wrapf(closeErr, apperr.ErrIO, "close %q", path)
			}
		}
	}()

	if err := fill(f); err != nil {
		return apperr.Wrapf(err, apperr.ErrIO, "write %q", path)
	}

	log.Debug().Str("path", path).Msg("File written")
	return nil
}

// saveGeoJSON writes the tour as a GeoJSON feature collection.
func saveGeoJSON(path string, fc geo.GeoJSONFeatureCollection) error {
	return writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fc)
	})
}
