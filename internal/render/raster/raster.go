// Package raster rasterises rendered frames into images and encodes them as
// PNG.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

const (
	surfaceName = "png"
	capSegments = 12
)

// Options controls the raster canvas.
type Options struct {
	Width      int
	Height     int
	Background string
	LabelColor string
}

// DefaultOptions returns an 800x800 white canvas with a dark label.
func DefaultOptions() Options {
	return Options{
		Width:      render.DefaultWidth,
		Height:     render.DefaultHeight,
		Background: "rgb(255,255,255)",
		LabelColor: "rgb(40,40,40)",
	}
}

// Surface records draw calls and rasterises them on demand.
type Surface struct {
	render.Recorder
	opts Options
}

// New returns an empty raster surface.
func New(opts Options) *Surface {
	return &Surface{opts: opts}
}

// Image rasterises the current frame.
func (s *Surface) Image() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, s.opts.Width, s.opts.Height))

	if s.opts.Background != "" {
		bg, err := palette.RGBA(s.opts.Background)
		if err != nil {
			return nil, fgerrors.NewRenderError(surfaceName, err)
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	frame := s.Frame()
	cache := map[string]color.RGBA{}
	for _, l := range frame.Lines {
		c, ok := cache[l.Colour]
		if !ok {
			parsed, err := palette.RGBA(l.Colour)
			if err != nil {
				return nil, fgerrors.NewRenderError(surfaceName, err)
			}
			cache[l.Colour] = parsed
			c = parsed
		}
		stroke(img, l.Start, l.End, float64(l.Width), c)
	}

	if frame.Label != "" {
		lc, err := palette.RGBA(s.opts.LabelColor)
		if err != nil {
			return nil, fgerrors.NewRenderError(surfaceName, err)
		}
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(lc),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(10, 20),
		}
		d.DrawString(frame.Label)
	}

	return img, nil
}

// Encode writes the current frame as PNG.
func (s *Surface) Encode(w io.Writer) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fgerrors.NewRenderError(surfaceName, err)
	}
	return nil
}

// WriteFile encodes the frame to path, appending ".png" when missing, and
// returns the path written. A failed write leaves no file behind.
func (s *Surface) WriteFile(path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		path += ".png"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fgerrors.NewRenderError(surfaceName, err)
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fgerrors.NewRenderError(surfaceName, err)
	}
	return path, nil
}

// stroke paints a line of the given width with round caps. The shape is
// rasterised into a mask covering only its own bounding box, then composited
// with clipping against dst.
func stroke(dst *image.RGBA, start, end geometry.Point, width float64, c color.RGBA) {
	r := math.Max(width/2, 0.5)

	box := image.Rect(
		int(math.Floor(math.Min(start.X, end.X)-r))-1,
		int(math.Floor(math.Min(start.Y, end.Y)-r))-1,
		int(math.Ceil(math.Max(start.X, end.X)+r))+1,
		int(math.Ceil(math.Max(start.Y, end.Y)+r))+1,
	)
	if !box.Overlaps(dst.Bounds()) {
		return
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	local := func(p geometry.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	dx, dy := end.X-start.X, end.Y-start.Y
	if length := math.Hypot(dx, dy); length > 0 {
		nx, ny := -dy/length*r, dx/length*r
		ax, ay := local(start.Add(nx, ny))
		bx, by := local(end.Add(nx, ny))
		cx, cy := local(end.Add(-nx, -ny))
		ex, ey := local(start.Add(-nx, -ny))
		z.MoveTo(ax, ay)
		z.LineTo(bx, by)
		z.LineTo(cx, cy)
		z.LineTo(ex, ey)
		z.ClosePath()
	}
	addCap(z, local, start, r)
	addCap(z, local, end, r)

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, box, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// addCap adds a disc around p. It winds the same way as the stroke body so
// overlapping coverage accumulates instead of cancelling.
func addCap(z *vector.Rasterizer, local func(geometry.Point) (float32, float32), p geometry.Point, r float64) {
	for i := 0; i <= capSegments; i++ {
		theta := -2 * math.Pi * float64(i) / capSegments
		x, y := local(p.Add(r*math.Cos(theta), r*math.Sin(theta)))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}
