package kml_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/woozymasta/ctok/internal/geo"
	"github.com/woozymasta/ctok/internal/kml"
	"github.com/woozymasta/ctok/internal/tour"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoints = []geo.Coordinate{
	{Lat: 40, Lon: -75},
	{Lat: 41, Lon: -76},
	{Lat: 42, Lon: -77},
	{Lat: 43, Lon: -78},
}

// document mirrors the parts of the output the tests inspect.
type document struct {
	XMLName  xml.Name `xml:"kml"`
	Document struct {
		Name   string `xml:"name"`
		Folder struct {
			Placemarks []struct {
				ID          string `xml:"id,attr"`
				Name        string `xml:"name"`
				Width       string `xml:"Style>LineStyle>width"`
				Line        string `xml:"LineString>coordinates"`
				Coordinates string `xml:"Point>coordinates"`
			} `xml:"Placemark"`
		} `xml:"Folder"`
	} `xml:"Document"`
}

func render(t *testing.T, tr tour.Tour, opts kml.Options) (string, document) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, kml.RenderTrack(&buf, samplePoints, tr, opts))

	var doc document
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	return buf.String(), doc
}

func TestRenderTrack(t *testing.T) {
	t.Run("closed track and points", func(t *testing.T) {
		out, doc := render(t, tour.Tour{0, 2, 1, 3}, kml.Options{Name: "points", Points: true})

		assert.True(t, strings.HasPrefix(out, xml.Header))
		assert.Equal(t, kml.Namespace, doc.XMLName.Space)
		assert.Equal(t, "points", doc.Document.Name)

		placemarks := doc.Document.Folder.Placemarks
		require.Len(t, placemarks, 5)

		track := placemarks[0]
		assert.Equal(t, "TOUR", track.ID)
		assert.Equal(t, "3.0", track.Width)
		assert.Equal(t,
			"\n-75.000000,40.000000\n-77.000000,42.000000\n-76.000000,41.000000\n-78.000000,43.000000\n-75.000000,40.000000\n",
			track.Line)

		for i, p := range placemarks[1:] {
			assert.Equal(t, []string{"1", "2", "3", "4"}[i], p.Name)
		}
		assert.Equal(t, "-76.000000,41.000000\n", placemarks[2].Coordinates)
	})

	t.Run("without points", func(t *testing.T) {
		_, doc := render(t, tour.Tour{0, 1, 2, 3}, kml.Options{LineWidth: "5.5"})

		require.Len(t, doc.Document.Folder.Placemarks, 1)
		assert.Equal(t, "5.5", doc.Document.Folder.Placemarks[0].Width)
		assert.Empty(t, doc.Document.Name)
	})

	t.Run("minified", func(t *testing.T) {
		plain, _ := render(t, tour.Tour{0, 1, 2, 3}, kml.Options{Points: true})
		small, doc := render(t, tour.Tour{0, 1, 2, 3}, kml.Options{Points: true, Minify: true})

		assert.Less(t, len(small), len(plain))
		assert.Len(t, doc.Document.Folder.Placemarks, 5)
		assert.Contains(t, small, "<width>3.0</width>")
	})
}

func TestWriterClosesOnError(t *testing.T) {
	var buf bytes.Buffer
	w := kml.NewWriter(&buf)
	boom := errors.New("boom")

	err := w.Element("Folder", nil, func() error {
		return w.Element("Placemark", nil, func() error {
			if err := w.Leaf("name", "a & b"); err != nil {
				return err
			}
			return boom
		})
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "a &amp; b")
	assert.True(t, strings.HasSuffix(out, "</Folder>"))

	var v struct {
		XMLName xml.Name `xml:"Folder"`
	}
	assert.NoError(t, xml.Unmarshal(buf.Bytes(), &v))
}
