// Package tree generates randomized fractal trees and the field guide names
// that go with them.
//
// A FractalTree is built once: construct it with New, call Generate, then
// read its branches, colours and name. All randomness comes from the
// injected random.Provider, so a seeded provider yields a reproducible tree.
package tree

import (
	"fmt"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/lexicon"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

// FractalTree holds the branches of one generated tree in depth-first
// pre-order together with its colours and name.
type FractalTree struct {
	Branches          []Branch
	BarkColour        string
	BarkColourName    string
	FoliageColour     string
	FoliageColourName string
	Name              string
	NameParts         []lexicon.Token

	params        Params
	rng           *random.Provider
	start         geometry.Point
	leafThreshold int
	depth         int
	generated     bool
}

// New prepares a tree for a canvas of the given size. The trunk grows from the
// bottom centre.
func New(width, height float64, rng *random.Provider, params Params) *FractalTree {
	return &FractalTree{
		params:   params,
		rng:      rng,
		start:    geometry.Point{X: width / 2, Y: height},
		Branches: make([]Branch, 0),
	}
}

// Generate draws the leaf threshold, builds the branches, then picks bark and
// foliage colours, then composes the name. It may only be called once.
func (t *FractalTree) Generate() error {
	if t.generated {
		return ErrAlreadyGenerated
	}
	t.generated = true

	if err := t.params.Validate(); err != nil {
		return fgerrors.NewGenerationError("params", err)
	}
	t.leafThreshold = t.rng.Int(t.params.LeafThresholdMin, t.params.LeafThresholdMax)

	if err := t.buildBranches(); err != nil {
		t.Branches = nil
		return fgerrors.NewGenerationError("branches", err)
	}

	t.selectBarkColour()
	t.selectFoliageColour()
	t.composeName()
	return nil
}

// Generated reports whether Generate completed successfully.
func (t *FractalTree) Generated() bool {
	return t.generated && t.Name != ""
}

// LeafThreshold returns the length at or below which branches are leaves.
func (t *FractalTree) LeafThreshold() int {
	return t.leafThreshold
}

// Depth returns the number of generation levels in the tree.
func (t *FractalTree) Depth() int {
	return t.depth
}

// Leaves counts leaf branches.
func (t *FractalTree) Leaves() int {
	n := 0
	for _, br := range t.Branches {
		if br.Leaf {
			n++
		}
	}
	return n
}

func (t *FractalTree) String() string {
	return fmt.Sprintf("%s (%d branches, %s bark, %s foliage)", t.Name, len(t.Branches), t.BarkColourName, t.FoliageColourName)
}
