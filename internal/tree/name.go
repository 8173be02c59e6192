package tree

import (
	"strings"

	"github.com/alexisbeaulieu97/fieldguide/internal/lexicon"
	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
)

const (
	singleModifierUpTo = 0.6
	directionUpTo      = 0.3
	regionUpTo         = 0.9
	biomeUpTo          = 0.5
	ownColourAbove     = 0.7
)

var (
	directionTokens = lexicon.Tokens(lexicon.KindDirection, lexicon.Direction)
	regionTokens    = lexicon.Tokens(lexicon.KindRegion, lexicon.Region)
	miscTokens      = lexicon.Tokens(lexicon.KindMisc, lexicon.Misc)
	biomeTokens     = lexicon.Tokens(lexicon.KindBiome, lexicon.Biome)
	colourTokens    = lexicon.Tokens(lexicon.KindColour, lexicon.Colour)
	speciesTokens   = lexicon.Tokens(lexicon.KindSpecies, lexicon.Species)
)

// composeName builds "Modifier [Modifier] Species". Names with two modifiers
// lead with a geographic word and follow with either a biome or a colour,
// never both.
func (t *FractalTree) composeName() {
	parts := make([]lexicon.Token, 0, 3)

	if t.rng.Float(0, 1) <= singleModifierUpTo {
		parts = append(parts, t.colourModifierOr(lexicon.AllModifiers))
	} else {
		geo := t.rng.Float(0, 1)
		switch {
		case geo <= directionUpTo:
			parts = append(parts, random.Choice(t.rng, directionTokens))
		case geo <= regionUpTo:
			parts = append(parts, random.Choice(t.rng, regionTokens))
		default:
			parts = append(parts, random.Choice(t.rng, miscTokens))
		}

		if t.rng.Float(0, 1) <= biomeUpTo {
			parts = append(parts, random.Choice(t.rng, biomeTokens))
		} else {
			parts = append(parts, t.colourModifierOr(colourTokens))
		}
	}

	parts = append(parts, random.Choice(t.rng, speciesTokens))

	words := make([]string, len(parts))
	for i, p := range parts {
		words[i] = p.Text
	}
	t.NameParts = parts
	t.Name = strings.Join(words, " ")
}

// colourModifierOr sometimes names the tree after its own unusual foliage or
// bark, falling back to a uniform pick from fallback. The extra draws only
// happen when the colour is non-default.
func (t *FractalTree) colourModifierOr(fallback []lexicon.Token) lexicon.Token {
	if t.FoliageColourName != palette.NameGreen && t.rng.Float(0, 1) > ownColourAbove {
		return lexicon.Token{Kind: lexicon.KindFoliage, Text: t.FoliageColourName}
	}
	if t.BarkColourName != palette.NameBrown && t.rng.Float(0, 1) > ownColourAbove {
		return lexicon.Token{Kind: lexicon.KindBark, Text: t.BarkColourName}
	}
	return random.Choice(t.rng, fallback)
}
