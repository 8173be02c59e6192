package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/tree"
)

func TestGridPlotsTrunk(t *testing.T) {
	t.Parallel()

	s := New(Options{Cols: 10, Rows: 10, Width: 100, Height: 100})
	s.DrawLine(geometry.Point{X: 50, Y: 100}, geometry.Point{X: 50, Y: 0}, 10, "rgb(139,69,19)")

	grid := s.Grid()
	require.Len(t, grid, 10)
	for row := 0; row < 10; row++ {
		require.Equal(t, Cell{Glyph: '█', Colour: "rgb(139,69,19)"}, grid[row][5], "row %d", row)
		require.Zero(t, grid[row][0].Glyph)
	}
}

func TestGridLaterLinesOverwrite(t *testing.T) {
	t.Parallel()

	s := New(Options{Cols: 4, Rows: 4, Width: 4, Height: 4})
	s.DrawLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 3, Y: 3}, 1, "rgb(1,1,1)")
	s.DrawLine(geometry.Point{X: 3, Y: 0}, geometry.Point{X: 0, Y: 3}, 4, "rgb(2,2,2)")

	grid := s.Grid()
	require.Equal(t, Cell{Glyph: '░', Colour: "rgb(1,1,1)"}, grid[0][0])
	require.Equal(t, Cell{Glyph: '▓', Colour: "rgb(2,2,2)"}, grid[0][3])
	require.Equal(t, "rgb(2,2,2)", grid[1][2].Colour)
}

func TestGridIgnoresOffCanvasCells(t *testing.T) {
	t.Parallel()

	s := New(Options{Cols: 5, Rows: 5, Width: 50, Height: 50})
	s.DrawLine(geometry.Point{X: -100, Y: -100}, geometry.Point{X: 200, Y: 200}, 2, "rgb(0,0,0)")

	grid := s.Grid()
	for i := 0; i < 5; i++ {
		require.Equal(t, '▒', grid[i][i].Glyph)
	}
}

func TestRenderIncludesLabelAndRows(t *testing.T) {
	t.Parallel()

	tr := tree.New(800, 800, random.NewSeeded(11), tree.DefaultParams())
	require.NoError(t, tr.Generate())

	s := New(DefaultOptions())
	render.NewRenderer(s).Present(tr)

	out := s.Render()
	require.Contains(t, out, tr.Name)
	require.Equal(t, 40, strings.Count(out, "\n"))
}

func TestResize(t *testing.T) {
	t.Parallel()

	s := New(DefaultOptions())
	s.Resize(20, 0)
	grid := s.Grid()
	require.Len(t, grid, 40)
	require.Len(t, grid[0], 20)
}
