package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldguide/internal/config"
	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/term"
	"github.com/alexisbeaulieu97/fieldguide/internal/tui/components"
)

func newService(seed uint64) *fieldguide.Service {
	cfg := config.Default()
	cfg.Seed = &seed
	return fieldguide.NewService(cfg, nil)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ready returns a model with its first tree already on screen.
func ready(t *testing.T, svc *fieldguide.Service, opts Options) Model {
	t.Helper()

	m := NewModel(context.Background(), svc, opts)
	msg := generateCmd(context.Background(), svc, m.opts.Grid)()
	generated, ok := msg.(GeneratedMsg)
	require.True(t, ok, "unexpected message %T", msg)

	updated, _ := m.Update(generated)
	return updated.(Model)
}

func TestNewModelStartsBusy(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), newService(1), Options{})
	require.True(t, m.Busy())
	require.Nil(t, m.Specimen())
	require.NotNil(t, m.Init())
	require.Equal(t, term.DefaultOptions(), m.opts.Grid)
}

func TestRegenerateIgnoredWhileBusy(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), newService(1), Options{})
	for _, msg := range []tea.KeyMsg{runes("r"), {Type: tea.KeySpace}, {Type: tea.KeyEnter}} {
		updated, cmd := m.Update(msg)
		require.Nil(t, cmd)
		require.True(t, updated.(Model).Busy())
	}
}

func TestGeneratedMessageShowsTree(t *testing.T) {
	t.Parallel()

	m := ready(t, newService(4), Options{})
	require.False(t, m.Busy())
	require.NotNil(t, m.Specimen())
	require.Contains(t, m.status, "seed")

	view := m.View()
	require.Contains(t, view, m.Specimen().Name)
	require.Contains(t, view, "new tree")
}

func TestRegenerateStartsNewGeneration(t *testing.T) {
	t.Parallel()

	svc := newService(8)
	m := ready(t, svc, Options{})
	first := m.Specimen().Seed

	for _, msg := range []tea.KeyMsg{runes("r"), {Type: tea.KeySpace}, {Type: tea.KeyEnter}} {
		updated, cmd := m.Update(msg)
		busy := updated.(Model)
		require.True(t, busy.Busy())
		require.NotNil(t, cmd)
		require.Contains(t, busy.View(), "growing")
	}

	second := generateCmd(context.Background(), svc, m.opts.Grid)().(GeneratedMsg)
	updated, _ := m.Update(second)
	require.NotEqual(t, first, updated.(Model).Specimen().Seed)
}

func TestGenerateErrorIsShown(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), newService(1), Options{})
	updated, _ := m.Update(GenerateErrorMsg{Err: errors.New("branch limit exceeded")})
	m = updated.(Model)
	require.False(t, m.Busy())
	require.Contains(t, m.View(), "branch limit exceeded")
}

func TestSaveWritesSVG(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := newService(12)
	m := ready(t, svc, Options{SaveDir: dir, SVG: svg.DefaultOptions()})

	updated, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)

	msg := saveCmd(context.Background(), svc, m.Specimen(), dir, svg.DefaultOptions())()
	saved, ok := msg.(SavedMsg)
	require.True(t, ok, "unexpected message %T", msg)
	require.Equal(t, dir, filepath.Dir(saved.Path))
	require.True(t, strings.HasSuffix(saved.Path, ".svg"))

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")

	final, _ := updated.(Model).Update(saved)
	require.Contains(t, final.(Model).View(), "saved")
}

func TestSaveWhileGrowingKeepsDisplayedTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := newService(13)
	m := ready(t, svc, Options{SaveDir: dir, SVG: svg.DefaultOptions()})
	shown := m.Specimen()

	growing, _ := m.Update(runes("r"))
	require.True(t, growing.(Model).Busy())

	updated, cmd := growing.(Model).Update(runes("s"))
	require.NotNil(t, cmd)
	require.NotEqual(t, "nothing to save yet", updated.(Model).status)

	saved, ok := cmd().(SavedMsg)
	require.True(t, ok)
	require.Contains(t, filepath.Base(saved.Path), shown.Entry().FileStem())
}

func TestSaveWithoutTree(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), newService(1), Options{})
	updated, cmd := m.Update(runes("s"))
	require.Nil(t, cmd)
	require.Equal(t, "nothing to save yet", updated.(Model).status)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := NewModel(context.Background(), newService(1), Options{})
		updated, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Empty(t, updated.(Model).View())
	}
}

func TestWindowResizeAdjustsGrid(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), newService(1), Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	require.Equal(t, 100-components.CardWidth, m.opts.Grid.Cols)
	require.Equal(t, 30-chromeRows, m.opts.Grid.Rows)
	require.Len(t, m.surface.Grid(), 30-chromeRows)
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	t.Parallel()

	m := ready(t, newService(2), Options{})
	_, cmd := m.Update(spinner.TickMsg{})
	require.Nil(t, cmd)
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := ready(t, newService(2), Options{})
	updated, _ := m.Update(runes("?"))
	require.True(t, updated.(Model).help.ShowAll)
}
