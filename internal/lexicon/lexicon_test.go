package lexicon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllModifiersPreservesCategoryOrder(t *testing.T) {
	t.Parallel()

	total := len(Direction) + len(Region) + len(Biome) + len(Misc) + len(Colour)
	require.Len(t, AllModifiers, total)

	require.Equal(t, Token{Kind: KindDirection, Text: "Northern"}, AllModifiers[0])
	require.Equal(t, Token{Kind: KindRegion, Text: "American"}, AllModifiers[len(Direction)])
	require.Equal(t, Token{Kind: KindColour, Text: "Green"}, AllModifiers[total-1])
}

func TestTokensTagsEveryWord(t *testing.T) {
	t.Parallel()

	tokens := Tokens(KindSpecies, Species)
	require.Len(t, tokens, len(Species))
	for i, tok := range tokens {
		require.Equal(t, KindSpecies, tok.Kind)
		require.Equal(t, Species[i], tok.Text)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	require.True(t, Contains(Species, "Crabapple"))
	require.False(t, Contains(Species, "Baobab"))
}
