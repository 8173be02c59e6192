// Package term draws rendered frames as coloured character grids for the
// terminal UI.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
)

// Options sizes the grid and the logical canvas it samples.
type Options struct {
	Cols   int
	Rows   int
	Width  float64
	Height float64
}

// DefaultOptions fits the 800x800 canvas into 80x40 cells; terminal cells are
// roughly twice as tall as they are wide.
func DefaultOptions() Options {
	return Options{Cols: 80, Rows: 40, Width: render.DefaultWidth, Height: render.DefaultHeight}
}

// Cell is one character of the grid.
type Cell struct {
	Glyph  rune
	Colour string
}

// Surface records draw calls and plots them onto a character grid.
type Surface struct {
	render.Recorder
	opts Options
}

// New returns an empty terminal surface.
func New(opts Options) *Surface {
	return &Surface{opts: opts}
}

// Resize changes the grid dimensions used by later calls to Grid and Render.
func (s *Surface) Resize(cols, rows int) {
	if cols > 0 {
		s.opts.Cols = cols
	}
	if rows > 0 {
		s.opts.Rows = rows
	}
}

// Grid plots every recorded line in order; later lines overwrite earlier ones.
func (s *Surface) Grid() [][]Cell {
	grid := make([][]Cell, s.opts.Rows)
	for i := range grid {
		grid[i] = make([]Cell, s.opts.Cols)
	}

	for _, l := range s.Frame().Lines {
		x0, y0 := s.cell(l.Start.X, l.Start.Y)
		x1, y1 := s.cell(l.End.X, l.End.Y)
		glyph := glyphFor(l.Width)
		plot(x0, y0, x1, y1, func(x, y int) {
			if y < 0 || y >= s.opts.Rows || x < 0 || x >= s.opts.Cols {
				return
			}
			grid[y][x] = Cell{Glyph: glyph, Colour: l.Colour}
		})
	}
	return grid
}

// Render returns the grid as styled text followed by the label.
func (s *Surface) Render() string {
	hexes := map[string]string{}
	styleFor := func(colour string) lipgloss.Style {
		hex, ok := hexes[colour]
		if !ok {
			hex, _ = palette.Hex(colour)
			hexes[colour] = hex
		}
		if hex == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	var b strings.Builder
	for i, row := range s.Grid() {
		if i > 0 {
			b.WriteByte('\n')
		}
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && row[end].Colour == row[start].Colour {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				if c.Glyph == 0 {
					run.WriteByte(' ')
					continue
				}
				run.WriteRune(c.Glyph)
			}
			if row[start].Colour == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(styleFor(row[start].Colour).Render(run.String()))
			}
			start = end
		}
	}

	if label := s.Frame().Label; label != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(label))
	}
	return b.String()
}

func (s *Surface) cell(x, y float64) (int, int) {
	col := int(x / s.opts.Width * float64(s.opts.Cols))
	row := int(y / s.opts.Height * float64(s.opts.Rows))
	if row == s.opts.Rows {
		row--
	}
	return col, row
}

func glyphFor(width int) rune {
	switch {
	case width >= 8:
		return '█'
	case width >= 4:
		return '▓'
	case width >= 2:
		return '▒'
	default:
		return '░'
	}
}

// plot walks the cells between two points with Bresenham's algorithm.
func plot(x0, y0, x1, y1 int, set func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
