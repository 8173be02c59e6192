package render

import (
	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
)

// Line is one recorded DrawLine call.
type Line struct {
	Start  geometry.Point
	End    geometry.Point
	Width  int
	Colour string
}

// Frame is the content of a surface between two clears.
type Frame struct {
	Lines []Line
	Label string
}

// Segments returns the geometry of the frame's lines in draw order.
func (f Frame) Segments() []geometry.LineSegment {
	out := make([]geometry.LineSegment, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = geometry.LineSegment{Start: l.Start, End: l.End}
	}
	return out
}

// Recorder is a Surface that keeps the current frame in memory. Backends
// embed it and encode the frame on demand.
type Recorder struct {
	frame  Frame
	clears int
}

var _ Surface = (*Recorder)(nil)

// Clear discards the current frame.
func (r *Recorder) Clear() {
	r.frame = Frame{}
	r.clears++
}

// DrawLine records a line.
func (r *Recorder) DrawLine(start, end geometry.Point, width int, colour string) {
	r.frame.Lines = append(r.frame.Lines, Line{Start: start, End: end, Width: width, Colour: colour})
}

// SetLabel records the label text.
func (r *Recorder) SetLabel(text string) {
	r.frame.Label = text
}

// Frame returns a copy of the current frame.
func (r *Recorder) Frame() Frame {
	return Frame{
		Lines: append([]Line(nil), r.frame.Lines...),
		Label: r.frame.Label,
	}
}

// Clears returns how many times the surface has been cleared.
func (r *Recorder) Clears() int {
	return r.clears
}
