package fieldguide

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/fieldguide/internal/lexicon"
)

// Entry is the printable summary of a specimen.
type Entry struct {
	Name              string     `json:"name"`
	Seed              uint64     `json:"seed"`
	BarkColour        string     `json:"bark_colour"`
	BarkColourName    string     `json:"bark_colour_name"`
	FoliageColour     string     `json:"foliage_colour"`
	FoliageColourName string     `json:"foliage_colour_name"`
	Branches          int        `json:"branches"`
	Leaves            int        `json:"leaves"`
	Depth             int        `json:"depth"`
	LeafThreshold     int        `json:"leaf_threshold"`
	NameParts         []NamePart `json:"name_parts"`
}

// NamePart is one token of the composed name.
type NamePart struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Entry summarises the specimen.
func (s *Specimen) Entry() Entry {
	parts := make([]NamePart, 0, len(s.NameParts))
	for _, tok := range s.NameParts {
		parts = append(parts, NamePart{Kind: string(tok.Kind), Text: tok.Text})
	}
	return Entry{
		Name:              s.Name,
		Seed:              s.Seed,
		BarkColour:        s.BarkColour,
		BarkColourName:    s.BarkColourName,
		FoliageColour:     s.FoliageColour,
		FoliageColourName: s.FoliageColourName,
		Branches:          len(s.Branches),
		Leaves:            s.Leaves(),
		Depth:             s.Depth(),
		LeafThreshold:     s.LeafThreshold(),
		NameParts:         parts,
	}
}

// LogFields implements ports.FieldPayload.
func (e Entry) LogFields() []interface{} {
	return []interface{}{
		"name", e.Name,
		"seed", e.Seed,
		"branches", e.Branches,
		"depth", e.Depth,
		"bark", e.BarkColourName,
		"foliage", e.FoliageColourName,
	}
}

// Species returns the trailing species token of the name.
func (e Entry) Species() string {
	for i := len(e.NameParts) - 1; i >= 0; i-- {
		if e.NameParts[i].Kind == string(lexicon.KindSpecies) {
			return e.NameParts[i].Text
		}
	}
	return ""
}

// Summary renders the entry the way the generate command prints it.
func (e Entry) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Name)
	fmt.Fprintf(&b, "  bark     %s %s\n", e.BarkColourName, e.BarkColour)
	fmt.Fprintf(&b, "  foliage  %s %s\n", e.FoliageColourName, e.FoliageColour)
	fmt.Fprintf(&b, "  branches %d (%d leaves, depth %d)\n", e.Branches, e.Leaves, e.Depth)
	fmt.Fprintf(&b, "  seed     %d\n", e.Seed)
	return b.String()
}

// FileStem returns a filesystem-friendly name such as "northern-maple-42".
func (e Entry) FileStem() string {
	words := strings.Fields(strings.ToLower(e.Name))
	if len(words) == 0 {
		words = []string{"tree"}
	}
	return fmt.Sprintf("%s-%d", strings.Join(words, "-"), e.Seed)
}
