package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/tree"
	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestImagePaintsStrokeAndBackground(t *testing.T) {
	t.Parallel()

	s := New(Options{Width: 100, Height: 100, Background: "rgb(255,255,255)", LabelColor: "rgb(0,0,0)"})
	s.DrawLine(geometry.Point{X: 10, Y: 50}, geometry.Point{X: 90, Y: 50}, 6, "rgb(139,69,19)")

	img, err := s.Image()
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 139, G: 69, B: 19, A: 255}, img.RGBAAt(50, 50))
	require.Equal(t, white, img.RGBAAt(50, 10))
	require.Equal(t, white, img.RGBAAt(50, 90))
}

func TestImageClipsStrokesOutsideCanvas(t *testing.T) {
	t.Parallel()

	s := New(Options{Width: 50, Height: 50, Background: "rgb(255,255,255)", LabelColor: "rgb(0,0,0)"})
	s.DrawLine(geometry.Point{X: -40, Y: 25}, geometry.Point{X: 200, Y: 25}, 4, "rgb(0,128,0)")
	s.DrawLine(geometry.Point{X: 500, Y: 500}, geometry.Point{X: 600, Y: 600}, 4, "rgb(0,128,0)")

	img, err := s.Image()
	require.NoError(t, err)
	require.Equal(t, color.RGBA{G: 128, A: 255}, img.RGBAAt(25, 25))
}

func TestImageDrawsLabel(t *testing.T) {
	t.Parallel()

	s := New(Options{Width: 200, Height: 40, Background: "rgb(255,255,255)", LabelColor: "rgb(0,0,0)"})
	s.SetLabel("Western Alpine Larch")

	img, err := s.Image()
	require.NoError(t, err)

	inked := 0
	for y := 5; y < 25; y++ {
		for x := 10; x < 150; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	require.Positive(t, inked)
}

func TestImageRejectsUnknownColour(t *testing.T) {
	t.Parallel()

	s := New(DefaultOptions())
	s.DrawLine(geometry.Point{}, geometry.Point{X: 10}, 1, "chartreuse")

	_, err := s.Image()
	var renderErr *fgerrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "png", renderErr.Surface)
}

func TestWriteFileRoundTripsTree(t *testing.T) {
	t.Parallel()

	tr := tree.New(800, 800, random.NewSeeded(3), tree.DefaultParams())
	require.NoError(t, tr.Generate())

	s := New(DefaultOptions())
	render.NewRenderer(s).Present(tr)

	path, err := s.WriteFile(filepath.Join(t.TempDir(), "entry"))
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 800, img.Bounds().Dy())
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	t.Parallel()

	s := New(DefaultOptions())
	s.DrawLine(geometry.Point{}, geometry.Point{X: 10}, 1, "chartreuse")

	path := filepath.Join(t.TempDir(), "broken.png")
	written, err := s.WriteFile(path)
	require.Error(t, err)
	require.Empty(t, written)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "stat error: %v", statErr)
}
