// Package lexicon holds the word lists tree names are composed from.
//
// A name reads "Modifier [Modifier] Species", e.g. "Eastern Swamp Chestnut"
// or "Russian Flowering Aspen". Modifiers come in kinds; biome and colour
// modifiers are never combined in one name.
package lexicon

// Kind classifies a name token.
type Kind string

const (
	KindDirection Kind = "direction"
	KindRegion    Kind = "region"
	KindBiome     Kind = "biome"
	KindMisc      Kind = "misc"
	KindColour    Kind = "colour"
	// KindFoliage and KindBark mark a modifier taken from the tree's own
	// non-default colour names.
	KindFoliage Kind = "foliage"
	KindBark    Kind = "bark"
	KindSpecies Kind = "species"
)

var (
	Direction = []string{"Northern", "Eastern", "Southern", "Western"}

	Region = []string{
		"American", "Asian", "European", "African", "Oceanic", "Arctic",
		"Canadian", "Brazilian", "Jamaican", "Chinese", "Japanese", "Peruvian", "Polish", "Kenyan", "Finnish", "Russian", "English",
		"Mediterranean", "Appalachian", "Himalayan",
	}

	Biome = []string{"Mountain", "Swamp", "Coastal", "Inland", "Tropical", "Alpine", "River", "Desert"}

	Misc = []string{"False", "Common", "Water", "King", "Plain", "Smooth", "Devils"}

	Colour = []string{"Black", "White", "Blue", "Red", "Green"}

	Species = []string{
		"Maple", "Birch", "Ash", "Aspen", "Oak", "Poplar", "Locust", "Dogwood", "Alder", "Acacia", "Beech", "Ginkgo",
		"Sycamore", "Hawthorn", "Willow", "Elm",
		"Fir", "Pine", "Spruce", "Redwood", "Sequoia", "Larch", "Cypress", "Cedar", "Yew",
		"Chestnut", "Walnut",
		"Apple", "Crabapple", "Cherry", "Lemon", "Fig", "Plum",
	}
)

// Token is one word of a composed name.
type Token struct {
	Kind Kind
	Text string
}

// AllModifiers is Direction, Region, Biome, Misc and Colour concatenated in
// that order, each entry tagged with its kind.
var AllModifiers = concat(
	tag(KindDirection, Direction),
	tag(KindRegion, Region),
	tag(KindBiome, Biome),
	tag(KindMisc, Misc),
	tag(KindColour, Colour),
)

// Tokens tags every word of list with kind.
func Tokens(kind Kind, list []string) []Token {
	return tag(kind, list)
}

func tag(kind Kind, list []string) []Token {
	out := make([]Token, len(list))
	for i, word := range list {
		out[i] = Token{Kind: kind, Text: word}
	}
	return out
}

func concat(groups ...[]Token) []Token {
	var out []Token
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Contains reports whether word appears in list.
func Contains(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}
