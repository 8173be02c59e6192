// Package tui is the interactive terminal viewer: each key press grows a new
// tree and draws it as a coloured character grid.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/term"
)

// chromeRows is the number of terminal rows used by the header, label and
// help line around the grid.
const chromeRows = 4

// Service is the slice of fieldguide.Service the viewer needs.
type Service interface {
	Render(ctx context.Context, surface render.Surface) (*fieldguide.Specimen, error)
	Draw(ctx context.Context, specimen *fieldguide.Specimen, surface render.Surface) error
	Saved(ctx context.Context, specimen *fieldguide.Specimen, path string)
}

// Options configures the viewer.
type Options struct {
	// SaveDir receives SVG files written with the save key.
	SaveDir string
	SVG     svg.Options
	Grid    term.Options
}

// Model contains the Bubbletea state for the field guide viewer.
type Model struct {
	ctx  context.Context
	svc  Service
	opts Options

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	surface  *term.Surface
	specimen *fieldguide.Specimen
	busy     bool
	status   string
	err      error
	quitting bool

	width  int
	height int
}

// NewModel builds a viewer. The first tree is requested by Init.
func NewModel(ctx context.Context, svc Service, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Grid.Cols == 0 || opts.Grid.Rows == 0 {
		opts.Grid = term.DefaultOptions()
	}
	if opts.SaveDir == "" {
		opts.SaveDir = "."
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		ctx:     ctx,
		svc:     svc,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		surface: term.New(opts.Grid),
		busy:    true,
	}
}

// Init starts the spinner and grows the first tree.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.svc, m.opts.Grid))
}

// Specimen returns the tree currently on screen, if any.
func (m Model) Specimen() *fieldguide.Specimen {
	return m.specimen
}

// Busy reports whether a generation is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// Run starts the viewer and blocks until the user quits or ctx is done.
func Run(ctx context.Context, svc Service, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, svc, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
