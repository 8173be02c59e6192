// Package desktop shows field guide entries in a window. Clicking or
// pressing R grows a new tree on the game-loop goroutine.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
)

// Service is the slice of fieldguide.Service the window needs.
type Service interface {
	Render(ctx context.Context, surface render.Surface) (*fieldguide.Specimen, error)
	Draw(ctx context.Context, specimen *fieldguide.Specimen, surface render.Surface) error
	Saved(ctx context.Context, specimen *fieldguide.Specimen, path string)
}

// Input reports the user's intent for the current tick.
type Input interface {
	Regenerate() bool
	Save() bool
	Quit() bool
}

// Options configures the window.
type Options struct {
	Width      int
	Height     int
	Background string
	SaveDir    string
	SVG        svg.Options
}

var errNothingToSave = errors.New("nothing to save yet")

type stroke struct {
	x0, y0, x1, y1 float32
	width          float32
	colour         color.RGBA
}

// Game implements ebiten.Game. It is itself the render surface: the service
// draws into the embedded recorder, the recorded frame is painted once into an
// offscreen canvas and Draw copies that canvas to the screen.
type Game struct {
	render.Recorder

	ctx   context.Context
	svc   Service
	input Input
	opts  Options

	background color.RGBA
	strokes    []stroke
	canvas     *ebiten.Image
	dirty      bool
	specimen   *fieldguide.Specimen
	status     string
}

// NewGame builds a window model. It draws the first tree immediately.
func NewGame(ctx context.Context, svc Service, input Input, opts Options) (*Game, error) {
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = render.DefaultWidth, render.DefaultHeight
	}
	if opts.Background == "" {
		opts.Background = "rgb(255,255,255)"
	}
	if opts.SaveDir == "" {
		opts.SaveDir = "."
	}
	if input == nil {
		input = keyboardMouse{}
	}

	bg, err := palette.RGBA(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	g := &Game{ctx: ctx, svc: svc, input: input, opts: opts, background: bg}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Specimen returns the tree on screen.
func (g *Game) Specimen() *fieldguide.Specimen {
	return g.specimen
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.input.Quit() {
		return ebiten.Termination
	}
	if g.input.Regenerate() {
		if err := g.regenerate(); err != nil {
			g.status = err.Error()
		}
	}
	if g.input.Save() {
		path, err := g.save()
		if err != nil {
			g.status = err.Error()
		} else {
			g.status = "saved " + path
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil || g.dirty {
		g.paint()
	}
	screen.DrawImage(g.canvas, nil)
	ebitenutil.DebugPrintAt(screen, g.Frame().Label, 10, 10)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 10, g.opts.Height-20)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// paint renders the strokes into the offscreen canvas.
func (g *Game) paint() {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.opts.Width, g.opts.Height)
	}
	g.canvas.Fill(g.background)
	for _, s := range g.strokes {
		vector.StrokeLine(g.canvas, s.x0, s.y0, s.x1, s.y1, s.width, s.colour, true)
		r := s.width / 2
		vector.DrawFilledCircle(g.canvas, s.x0, s.y0, r, s.colour, true)
		vector.DrawFilledCircle(g.canvas, s.x1, s.y1, r, s.colour, true)
	}
	g.dirty = false
}

func (g *Game) regenerate() error {
	ctx := ports.WithCorrelationID(g.ctx, ports.GenerateCorrelationID())
	specimen, err := g.svc.Render(ctx, g)
	if err != nil {
		return err
	}
	g.specimen = specimen

	frame := g.Frame()
	g.strokes = g.strokes[:0]
	for _, l := range frame.Lines {
		c, err := palette.RGBA(l.Colour)
		if err != nil {
			return fmt.Errorf("line colour: %w", err)
		}
		g.strokes = append(g.strokes, stroke{
			x0:     float32(l.Start.X),
			y0:     float32(l.Start.Y),
			x1:     float32(l.End.X),
			y1:     float32(l.End.Y),
			width:  float32(l.Width),
			colour: c,
		})
	}
	g.dirty = true
	return nil
}

func (g *Game) save() (string, error) {
	if g.specimen == nil {
		return "", errNothingToSave
	}
	ctx := ports.WithCorrelationID(g.ctx, ports.GenerateCorrelationID())
	surface := svg.New(g.opts.SVG)
	if err := g.svc.Draw(ctx, g.specimen, surface); err != nil {
		return "", err
	}
	path, err := surface.WriteFile(filepath.Join(g.opts.SaveDir, g.specimen.Entry().FileStem()))
	if err != nil {
		return "", err
	}
	g.svc.Saved(ctx, g.specimen, path)
	return path, nil
}

type keyboardMouse struct{}

func (keyboardMouse) Regenerate() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (keyboardMouse) Save() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyS)
}

func (keyboardMouse) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, svc Service, opts Options) error {
	g, err := NewGame(ctx, svc, nil, opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("Field Guide")
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
