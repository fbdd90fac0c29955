package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]any  `json:"properties" yaml:"properties"`
	Type       string          `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Coordinates is [lon, lat] for a Point and [][lon, lat] for a LineString.
type GeoJSONGeometry struct {
	Type        string `json:"type" yaml:"type"`
	Coordinates any    `json:"coordinates" yaml:"coordinates"`
}

// TrackFeatures builds a LineString over path, closed back to its first
// point, optionally followed by one Point feature per element of points
// labelled with its 1-based index.
func TrackFeatures(path, points []Coordinate, withPoints bool) GeoJSONFeatureCollection {
	fc := GeoJSONFeatureCollection{Type: "FeatureCollection", Features: []GeoJSONFeature{}}
	if len(path) == 0 {
		return fc
	}

	line := make([][]float64, 0, len(path)+1)
	for _, c := range path {
		line = append(line, c.LonLat())
	}
	line = append(line, path[0].LonLat())

	fc.Features = append(fc.Features, GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        "LineString",
			Coordinates: line,
		},
		Properties: map[string]any{
			"name": "TOUR",
		},
	})

	if !withPoints {
		return fc
	}

	for i, c := range points {
		fc.Features = append(fc.Features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: c.LonLat(),
			},
			Properties: map[string]any{
				"name": i + 1,
			},
		})
	}

	return fc
}
