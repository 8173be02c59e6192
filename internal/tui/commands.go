package tui

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/term"
)

// GeneratedMsg carries a freshly drawn tree. The surface is new for every
// generation so the one on screen is never written concurrently.
type GeneratedMsg struct {
	Specimen *fieldguide.Specimen
	Surface  *term.Surface
}

// GenerateErrorMsg reports a failed generation.
type GenerateErrorMsg struct {
	Err error
}

// SavedMsg reports the path an SVG was written to.
type SavedMsg struct {
	Path string
}

// SaveErrorMsg reports a failed save.
type SaveErrorMsg struct {
	Err error
}

// generateCmd grows and draws a tree off the update loop
func generateCmd(ctx context.Context, svc Service, grid term.Options) tea.Cmd {
	return func() tea.Msg {
		ctx := ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
		surface := term.New(grid)
		specimen, err := svc.Render(ctx, surface)
		if err != nil {
			return GenerateErrorMsg{Err: err}
		}
		return GeneratedMsg{Specimen: specimen, Surface: surface}
	}
}

// saveCmd writes the specimen as SVG into dir
func saveCmd(ctx context.Context, svc Service, specimen *fieldguide.Specimen, dir string, opts svg.Options) tea.Cmd {
	return func() tea.Msg {
		ctx := ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
		surface := svg.New(opts)
		if err := svc.Draw(ctx, specimen, surface); err != nil {
			return SaveErrorMsg{Err: err}
		}
		path, err := surface.WriteFile(filepath.Join(dir, specimen.Entry().FileStem()))
		if err != nil {
			return SaveErrorMsg{Err: err}
		}
		svc.Saved(ctx, specimen, path)
		return SavedMsg{Path: path}
	}
}
