package tree

import (
	"github.com/alexisbeaulieu97/fieldguide/internal/palette"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
)

// Cumulative selection thresholds over a single [0, 1) draw.
const (
	brownBarkChance  = 0.7
	greenFoliageUpTo = 0.8
	ornamentalUpTo   = 0.9
)

// selectBarkColour picks brown bark 70% of the time, otherwise gray bark under
// one of its interchangeable names.
func (t *FractalTree) selectBarkColour() {
	if t.rng.Float(0, 1) <= brownBarkChance {
		t.BarkColour = random.Choice(t.rng, palette.Browns)
		t.BarkColourName = palette.NameBrown
		return
	}
	t.BarkColour = random.Choice(t.rng, palette.Grays)
	t.BarkColourName = random.Choice(t.rng, palette.GrayNames)
}

// selectFoliageColour picks green 80% of the time and ornamental or
// flowering foliage 10% each.
func (t *FractalTree) selectFoliageColour() {
	f := t.rng.Float(0, 1)
	switch {
	case f <= greenFoliageUpTo:
		t.FoliageColour = random.Choice(t.rng, palette.Greens)
		t.FoliageColourName = palette.NameGreen
	case f <= ornamentalUpTo:
		t.FoliageColour = random.Choice(t.rng, palette.Ornamental)
		t.FoliageColourName = palette.NameOrnamental
	default:
		t.FoliageColour = random.Choice(t.rng, palette.Flowering)
		t.FoliageColourName = palette.NameFlowering
	}
}
