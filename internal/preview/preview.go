// Package preview rasterizes a tour into a small WebP image.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/woozymasta/ctok/internal/geo"
	"github.com/woozymasta/ctok/internal/tour"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Defaults for Options.
const (
	DefaultSize    = 512
	DefaultQuality = 85
	supersample    = 2
)

// Options control Render and Encode.
type Options struct {
	Size     int     // output edge in pixels
	Quality  float32 // lossy quality, 0..100
	Lossless bool
	Points   bool // mark every coordinate
}

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	trackColor = color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
	pointColor = color.RGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff}
)

// projection maps lon/lat into pixel space, equirectangular, y down.
type projection struct {
	minLon, maxLat float64
	scale          float64
	offX, offY     float64
}

func newProjection(points []geo.Coordinate, size, margin float64) projection {
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	for _, c := range points {
		minLon, maxLon = math.Min(minLon, c.Lon), math.Max(maxLon, c.Lon)
		minLat, maxLat = math.Min(minLat, c.Lat), math.Max(maxLat, c.Lat)
	}

	span := math.Max(maxLon-minLon, maxLat-minLat)
	inner := size - 2*margin
	p := projection{minLon: minLon, maxLat: maxLat, scale: 1}
	if span > 0 {
		p.scale = inner / span
	}
	// center the shorter axis
	p.offX = margin + (inner-(maxLon-minLon)*p.scale)/2
	p.offY = margin + (inner-(maxLat-minLat)*p.scale)/2

	return p
}

func (p projection) xy(c geo.Coordinate) (float32, float32) {
	x := p.offX + (c.Lon-p.minLon)*p.scale
	y := p.offY + (p.maxLat-c.Lat)*p.scale
	return float32(x), float32(y)
}

// Render draws the closed tour over points. It returns a blank image when
// there is nothing to draw.
func Render(points []geo.Coordinate, t tour.Tour, opts Options) image.Image {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	big := size * supersample

	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if len(points) > 0 {
		proj := newProjection(points, float64(big), float64(big)/20)
		z := vector.NewRasterizer(big, big)
		half := float32(supersample)

		if len(t) > 1 {
			for i := range t {
				from := points[t[i]]
				to := points[t[(i+1)%len(t)]]
				x0, y0 := proj.xy(from)
				x1, y1 := proj.xy(to)
				segment(z, x0, y0, x1, y1, half)
			}
			z.Draw(canvas, canvas.Bounds(), image.NewUniform(trackColor), image.Point{})
		}

		if opts.Points {
			z.Reset(big, big)
			r := 3 * half
			for _, c := range points {
				x, y := proj.xy(c)
				z.MoveTo(x-r, y-r)
				z.LineTo(x+r, y-r)
				z.LineTo(x+r, y+r)
				z.LineTo(x-r, y+r)
				z.ClosePath()
			}
			z.Draw(canvas, canvas.Bounds(), image.NewUniform(pointColor), image.Point{})
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.BiLinear.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)

	return out
}

// segment adds a quad of half-width hw around the line to the path.
// All quads share the same winding so overlaps do not cancel out.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// Encode writes img as WebP.
func Encode(w io.Writer, img image.Image, opts Options) error {
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	return webp.Encode(w, img, &webp.Options{Lossless: opts.Lossless, Quality: quality})
}
