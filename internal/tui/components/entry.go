// Package components holds reusable pieces of the terminal viewer.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
)

// CardWidth is the rendered width of an EntryCard, border included.
const CardWidth = 30

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(CardWidth - 2)
	cardTitle = lipgloss.NewStyle().Bold(true)
	cardLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// EntryCard renders a field guide entry as a bordered panel.
type EntryCard struct {
	entry fieldguide.Entry
}

// NewEntryCard creates a card for entry.
func NewEntryCard(entry fieldguide.Entry) EntryCard {
	return EntryCard{entry: entry}
}

// View renders the card.
func (c EntryCard) View() string {
	e := c.entry
	lines := []string{
		cardTitle.Render(e.Name),
		"",
		row("bark", swatch(e.BarkColour)+" "+e.BarkColourName),
		row("foliage", swatch(e.FoliageColour)+" "+e.FoliageColourName),
		row("branches", fmt.Sprint(e.Branches)),
		row("leaves", fmt.Sprint(e.Leaves)),
		row("depth", fmt.Sprint(e.Depth)),
		row("seed", fmt.Sprint(e.Seed)),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func row(label, value string) string {
	return cardLabel.Render(fmt.Sprintf("%-9s", label)) + value
}

// swatch draws a block in the token's colour, or a placeholder when the
// token does not parse.
func swatch(token string) string {
	hex, err := palette.Hex(token)
	if err != nil {
		return "?"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
