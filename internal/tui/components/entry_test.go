package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
)

func TestEntryCardView(t *testing.T) {
	t.Parallel()

	entry := fieldguide.Entry{
		Name:              "Dusky Oak",
		Seed:              42,
		BarkColour:        "rgb(90,60,40)",
		BarkColourName:    "umber",
		FoliageColour:     "rgb(60,120,60)",
		FoliageColourName: "fern",
		Branches:          31,
		Leaves:            16,
		Depth:             4,
	}

	view := NewEntryCard(entry).View()

	tests := []struct {
		name string
		want string
	}{
		{name: "title", want: "Dusky Oak"},
		{name: "bark", want: "umber"},
		{name: "foliage", want: "fern"},
		{name: "branches", want: "31"},
		{name: "leaves", want: "16"},
		{name: "seed", want: "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Contains(t, view, tt.want)
		})
	}
}

func TestEntryCardWidth(t *testing.T) {
	t.Parallel()

	view := NewEntryCard(fieldguide.Entry{Name: "Pale Willow", BarkColour: "not a colour"}).View()
	require.Equal(t, CardWidth, lipgloss.Width(view))
	require.True(t, strings.Contains(view, "?"), "unparseable colours fall back to a placeholder")
}
