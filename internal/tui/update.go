package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldguide/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.opts.Grid.Cols = max(msg.Width-components.CardWidth, 1)
		m.opts.Grid.Rows = max(msg.Height-chromeRows, 1)
		m.surface.Resize(m.opts.Grid.Cols, m.opts.Grid.Rows)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GeneratedMsg:
		m.busy = false
		m.err = nil
		m.specimen = msg.Specimen
		m.surface = msg.Surface
		m.surface.Resize(m.opts.Grid.Cols, m.opts.Grid.Rows)
		m.status = fmt.Sprintf("seed %d", msg.Specimen.Seed)
		return m, nil

	case GenerateErrorMsg:
		m.busy = false
		m.err = msg.Err
		return m, nil

	case SavedMsg:
		m.err = nil
		m.status = "saved " + msg.Path
		return m, nil

	case SaveErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		// One trigger at a time.
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.svc, m.opts.Grid))

	case key.Matches(msg, m.keys.Save):
		// Saves the tree on screen, even while the next one grows.
		if m.specimen == nil {
			m.status = "nothing to save yet"
			return m, nil
		}
		return m, saveCmd(m.ctx, m.svc, m.specimen, m.opts.SaveDir, m.opts.SVG)
	}

	return m, nil
}
