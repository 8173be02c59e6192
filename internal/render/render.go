// Package render translates generated trees into draw calls against a
// Surface. Surfaces are the boundary to concrete backends (SVG, PNG,
// terminal, desktop window).
package render

import (
	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/tree"
)

// DefaultWidth and DefaultHeight are the logical canvas extent.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Surface accepts line segments and a text label. Colours are opaque CSS
// colour tokens taken from the tree's palettes.
type Surface interface {
	Clear()
	DrawLine(start, end geometry.Point, width int, colour string)
	SetLabel(text string)
}

// Renderer paints trees onto a surface.
type Renderer struct {
	surface Surface
}

// NewRenderer returns a Renderer drawing onto surface.
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Clear wipes the surface.
func (r *Renderer) Clear() {
	r.surface.Clear()
}

// DrawTree draws every branch in stored order, leaves in foliage colour and
// the rest in bark colour, then labels the surface with the tree's name.
func (r *Renderer) DrawTree(t *tree.FractalTree) {
	for _, b := range t.Branches {
		colour := t.BarkColour
		if b.Leaf {
			colour = t.FoliageColour
		}
		r.surface.DrawLine(b.Line.Start, b.Line.End, b.Width, colour)
	}
	r.surface.SetLabel(t.Name)
}

// Present clears the surface and draws t.
func (r *Renderer) Present(t *tree.FractalTree) {
	r.Clear()
	r.DrawTree(t)
}
