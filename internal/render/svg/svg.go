// Package svg encodes rendered frames as SVG documents.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

const surfaceName = "svg"

// Options controls the encoded document.
type Options struct {
	Width      int
	Height     int
	Background string
	// Fit sizes the document to the drawn lines instead of the full canvas.
	Fit    bool
	Margin int
}

// DefaultOptions returns an 800x800 white canvas.
func DefaultOptions() Options {
	return Options{
		Width:      render.DefaultWidth,
		Height:     render.DefaultHeight,
		Background: "rgb(255,255,255)",
		Margin:     10,
	}
}

// Surface records draw calls and encodes them with svgo.
type Surface struct {
	render.Recorder
	opts Options
}

// New returns an empty SVG surface.
func New(opts Options) *Surface {
	return &Surface{opts: opts}
}

// Encode writes the current frame as an SVG document.
func (s *Surface) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	frame := s.Frame()

	lines, width, height := frame.Lines, s.opts.Width, s.opts.Height
	if s.opts.Fit && len(lines) > 0 {
		lines, width, height = fitLines(frame, s.opts.Margin)
		canvas.Startview(width, height, 0, 0, width, height)
	} else {
		canvas.Start(width, height)
	}

	if frame.Label != "" {
		canvas.Title(frame.Label)
	}
	if s.opts.Background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+s.opts.Background)
	}

	canvas.Gstyle("fill:none;stroke-linecap:round")
	for _, l := range lines {
		canvas.Line(
			round(l.Start.X), round(l.Start.Y),
			round(l.End.X), round(l.End.Y),
			fmt.Sprintf("stroke:%s;stroke-width:%d", l.Colour, l.Width),
		)
	}
	canvas.Gend()

	if frame.Label != "" {
		canvas.Text(s.opts.Margin, s.opts.Margin+16, frame.Label, "font-family:serif;font-size:20px;fill:rgb(40,40,40)")
	}
	canvas.End()

	if ew.err != nil {
		return fgerrors.NewRenderError(surfaceName, ew.err)
	}
	return nil
}

// Bytes returns the encoded document.
func (s *Surface) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the frame to path, appending ".svg" when missing, and
// returns the path written.
func (s *Surface) WriteFile(path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".svg") {
		path += ".svg"
	}
	data, err := s.Bytes()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fgerrors.NewRenderError(surfaceName, err)
	}
	return path, nil
}

// fitLines moves the drawing so it starts margin units from the origin and
// returns the document size that covers it.
func fitLines(frame render.Frame, margin int) ([]render.Line, int, int) {
	shifted, w, h := geometry.Normalize(frame.Segments())
	m := float64(margin)
	out := make([]render.Line, len(frame.Lines))
	for i, l := range frame.Lines {
		seg := shifted[i].Translate(m, m)
		l.Start, l.End = seg.Start, seg.End
		out[i] = l
	}
	return out, w + 2*margin, h + 2*margin
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
