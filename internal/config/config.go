// Package config handles configuration loading and the conversion constants.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/ctok/internal/geo"
	"github.com/woozymasta/ctok/internal/kml"
	"github.com/woozymasta/ctok/internal/preview"
	"github.com/woozymasta/ctok/internal/tour"
	"github.com/woozymasta/ctok/internal/tsplib"

	"gopkg.in/yaml.v3"
)

// DefaultMinCoordinates is the smallest coordinate count worth converting.
const DefaultMinCoordinates = 4

// Config represents the root configuration file structure.
type Config struct {
	Preview             Preview `yaml:"preview" json:"preview"`
	LineWidth           string  `yaml:"line_width" json:"line_width"`
	ScaleFactor         float64 `yaml:"scale_factor" json:"scale_factor"`
	KmPerNm             float64 `yaml:"km_per_nm" json:"km_per_nm"`
	BearingTolerance    float64 `yaml:"bearing_tolerance" json:"bearing_tolerance"`
	MinCoordinates      int     `yaml:"min_coordinates" json:"min_coordinates"`
	CoordinatePrecision int     `yaml:"coordinate_precision" json:"coordinate_precision"`
}

// Preview holds raster preview settings.
type Preview struct {
	Size     int     `yaml:"size" json:"size"`
	Quality  float32 `yaml:"quality" json:"quality"`
	Lossless bool    `yaml:"lossless" json:"lossless"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MinCoordinates:      DefaultMinCoordinates,
		ScaleFactor:         tour.DefaultScale,
		KmPerNm:             geo.KmPerNm,
		BearingTolerance:    geo.DefaultBearingTolerance,
		CoordinatePrecision: tsplib.DefaultPrecision,
		LineWidth:           kml.DefaultLineWidth,
		Preview: Preview{
			Size:    preview.DefaultSize,
			Quality: preview.DefaultQuality,
		},
	}
}

// Load reads the YAML configuration at path over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the conversion cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.MinCoordinates < 2:
		return fmt.Errorf("min_coordinates must be >= 2, got %d", c.MinCoordinates)
	case c.ScaleFactor <= 0:
		return fmt.Errorf("scale_factor must be > 0, got %g", c.ScaleFactor)
	case c.KmPerNm <= 0:
		return fmt.Errorf("km_per_nm must be > 0, got %g", c.KmPerNm)
	case c.BearingTolerance <= 0:
		return fmt.Errorf("bearing_tolerance must be > 0, got %g", c.BearingTolerance)
	case c.CoordinatePrecision == 0:
		return fmt.Errorf("coordinate_precision must be non-zero")
	case c.Preview.Size <= 0:
		return fmt.Errorf("preview.size must be > 0, got %d", c.Preview.Size)
	}

	return nil
}

// Model returns the distance model configured by c.
func (c *Config) Model() geo.Model {
	return geo.Model{Tolerance: c.BearingTolerance, KmPerNm: c.KmPerNm}
}

// Evaluator returns the tour evaluator configured by c.
func (c *Config) Evaluator() tour.Evaluator {
	return tour.Evaluator{Model: c.Model(), Scale: c.ScaleFactor}
}
