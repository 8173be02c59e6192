package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldguide/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("Field Guide")
	switch {
	case m.busy:
		header = fmt.Sprintf("%s %s %s", header, m.spinner.View(), statusStyle.Render("growing..."))
	case m.err != nil:
		header = fmt.Sprintf("%s %s", header, errorStyle.Render(m.err.Error()))
	case m.status != "":
		header = fmt.Sprintf("%s %s", header, statusStyle.Render(m.status))
	}

	sections := []string{header}
	if m.specimen != nil {
		card := components.NewEntryCard(m.specimen.Entry())
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, m.surface.Render(), card.View()))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
