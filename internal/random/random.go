// Package random provides the uniform sampling helpers used by tree
// generation. All entropy comes from an injected Source so a generation can be
// replayed from a seed.
package random

import (
	"fmt"
	"math/rand/v2"
)

// Source is the entropy capability consumed by Provider. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Provider draws uniform integers, floats and list elements from a Source.
// A Provider is not safe for concurrent use; create one per generation.
type Provider struct {
	src Source
}

// New wraps src in a Provider.
func New(src Source) *Provider {
	return &Provider{src: src}
}

// NewSeeded returns a Provider backed by a PCG generator seeded with seed.
func NewSeeded(seed uint64) *Provider {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Int returns an integer uniformly distributed in [min, max].
func (p *Provider) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("random: invalid int range [%d, %d]", min, max))
	}
	return min + p.src.IntN(max-min+1)
}

// Float returns a float uniformly distributed in [min, max).
func (p *Provider) Float(min, max float64) float64 {
	if min >= max {
		panic(fmt.Sprintf("random: invalid float range [%g, %g)", min, max))
	}
	return min + p.src.Float64()*(max-min)
}

// Choice returns a uniformly selected element of list. It panics when list is
// empty; every list passed in by this module is a fixed non-empty table.
func Choice[T any](p *Provider, list []T) T {
	if len(list) == 0 {
		panic("random: choice from empty list")
	}
	return list[p.Int(0, len(list)-1)]
}
