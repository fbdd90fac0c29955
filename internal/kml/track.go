package kml

import (
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/ctok/internal/geo"
	"github.com/woozymasta/ctok/internal/tour"
)

// DefaultLineWidth is the track line width.
const DefaultLineWidth = "3.0"

// TrackID is the id of the tour placemark.
const TrackID = "TOUR"

// Options control RenderTrack.
type Options struct {
	// Name of the KML document; omitted when empty.
	Name string
	// LineWidth of the track; empty means DefaultLineWidth.
	LineWidth string
	// Points adds one labelled placemark per input coordinate.
	Points bool
	// Minify strips insignificant whitespace.
	Minify bool
}

// RenderTrack writes a KML document with one closed LineString placemark
// following t over points and, when opts.Points is set, one point placemark
// per coordinate named by its 1-based index.
func RenderTrack(out io.Writer, points []geo.Coordinate, t tour.Tour, opts Options) (err error) {
	if opts.Minify {
		mw := Minifier(out)
		defer func() {
			if cerr := mw.Close(); err == nil {
				err = cerr
			}
		}()
		out = mw
	}

	width := opts.LineWidth
	if width == "" {
		width = DefaultLineWidth
	}

	w := NewWriter(out)
	if err := w.Header(); err != nil {
		return err
	}

	err = w.Element("kml", Attr("xmlns", Namespace), func() error {
		return w.Element("Document", nil, func() error {
			if opts.Name != "" {
				if err := w.Leaf("name", opts.Name); err != nil {
					return err
				}
			}
			return w.Element("Folder", nil, func() error {
				if err := writeTrack(w, points, t, width); err != nil {
					return err
				}
				if !opts.Points {
					return nil
				}
				for i, c := range points {
					if err := writePoint(w, i, c); err != nil {
						return err
					}
				}
				return nil
			})
		})
	})
	if err != nil {
		return err
	}

	return w.Flush()
}

func writeTrack(w *Writer, points []geo.Coordinate, t tour.Tour, width string) error {
	return w.Element("Placemark", Attr("id", TrackID), func() error {
		err := w.Element("Style", nil, func() error {
			return w.Element("LineStyle", nil, func() error {
				return w.Leaf("width", width)
			})
		})
		if err != nil {
			return err
		}

		return w.Element("LineString", nil, func() error {
			var sb strings.Builder
			sb.WriteByte('\n')
			for _, idx := range t {
				writeLonLat(&sb, points[idx])
			}
			if len(t) > 0 {
				writeLonLat(&sb, points[t[0]])
			}
			return w.Leaf("coordinates", sb.String())
		})
	})
}

func writePoint(w *Writer, i int, c geo.Coordinate) error {
	return w.Element("Placemark", nil, func() error {
		if err := w.Leaf("name", strconv.Itoa(i+1)); err != nil {
			return err
		}
		return w.Element("Point", nil, func() error {
			var sb strings.Builder
			writeLonLat(&sb, c)
			return w.Leaf("coordinates", sb.String())
		})
	})
}

// writeLonLat appends "lon,lat\n" with six fixed decimals.
func writeLonLat(sb *strings.Builder, c geo.Coordinate) {
	sb.WriteString(strconv.FormatFloat(c.Lon, 'f', 6, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(c.Lat, 'f', 6, 64))
	sb.WriteByte('\n')
}
