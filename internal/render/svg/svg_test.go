package svg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/tree"
	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

func TestEncodeDrawsEveryBranch(t *testing.T) {
	t.Parallel()

	tr := tree.New(800, 800, random.NewSeeded(9), tree.DefaultParams())
	require.NoError(t, tr.Generate())

	surface := New(DefaultOptions())
	render.NewRenderer(surface).Present(tr)

	data, err := surface.Bytes()
	require.NoError(t, err)
	doc := string(data)

	require.Equal(t, len(tr.Branches), strings.Count(doc, "<line "))
	require.Contains(t, doc, `width="800"`)
	require.Contains(t, doc, "stroke-linecap:round")
	require.Contains(t, doc, tr.Name)
	require.Contains(t, doc, "stroke:"+tr.BarkColour)
	require.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"))
}

func TestEncodeEscapesLabel(t *testing.T) {
	t.Parallel()

	surface := New(DefaultOptions())
	surface.SetLabel("Smooth & <Swamp> Fig")

	data, err := surface.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(data), "Smooth &amp; &lt;Swamp&gt; Fig")
}

func TestFitUsesViewBox(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Fit = true
	surface := New(opts)
	surface.DrawLine(geometry.Point{X: 100, Y: 200}, geometry.Point{X: 150, Y: 260}, 3, "rgb(0,0,0)")

	data, err := surface.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(data), `viewBox="0 0 70 80"`)
	require.Contains(t, string(data), `x1="10" y1="10" x2="60" y2="70"`)
}

func TestWriteFileAppendsExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	surface := New(DefaultOptions())
	surface.DrawLine(geometry.Point{}, geometry.Point{X: 5, Y: 5}, 1, "rgb(0,0,0)")

	written, err := surface.WriteFile(filepath.Join(dir, "entry"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "entry.svg"), written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	require.Contains(t, string(data), "<line ")

	kept, err := surface.WriteFile(filepath.Join(dir, "other.SVG"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "other.SVG"), kept)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeReportsWriteErrors(t *testing.T) {
	t.Parallel()

	err := New(DefaultOptions()).Encode(failingWriter{})

	var renderErr *fgerrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "svg", renderErr.Surface)
}
