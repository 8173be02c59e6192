package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	intFn   func(n int) int
	floatFn func() float64
}

func (f fixedSource) IntN(n int) int   { return f.intFn(n) }
func (f fixedSource) Float64() float64 { return f.floatFn() }

func TestIntStaysWithinInclusiveBounds(t *testing.T) {
	t.Parallel()

	p := NewSeeded(42)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := p.Int(-3, 3)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	require.Len(t, seen, 7, "every value in the inclusive range should appear")
}

func TestIntExtremesMapToRangeEnds(t *testing.T) {
	t.Parallel()

	low := New(fixedSource{intFn: func(int) int { return 0 }, floatFn: func() float64 { return 0 }})
	require.Equal(t, 6, low.Int(6, 9))

	high := New(fixedSource{intFn: func(n int) int { return n - 1 }, floatFn: func() float64 { return 0 }})
	require.Equal(t, 9, high.Int(6, 9))
}

func TestIntSingleValueRange(t *testing.T) {
	t.Parallel()

	p := NewSeeded(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, 5, p.Int(5, 5))
	}
}

func TestFloatIsHalfOpen(t *testing.T) {
	t.Parallel()

	p := NewSeeded(99)
	for i := 0; i < 5000; i++ {
		v := p.Float(0.45, 0.85)
		require.GreaterOrEqual(t, v, 0.45)
		require.Less(t, v, 0.85)
	}

	low := New(fixedSource{intFn: func(int) int { return 0 }, floatFn: func() float64 { return 0 }})
	require.Equal(t, 0.45, low.Float(0.45, 0.85))
}

func TestInvalidRangesPanic(t *testing.T) {
	t.Parallel()

	p := NewSeeded(1)
	require.Panics(t, func() { p.Int(3, 2) })
	require.Panics(t, func() { p.Float(1, 1) })
}

func TestChoiceCoversList(t *testing.T) {
	t.Parallel()

	p := NewSeeded(3)
	list := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[Choice(p, list)] = true
	}
	require.Len(t, seen, 3)
}

func TestChoiceEmptyPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { Choice(NewSeeded(1), []int{}) })
}

func TestSeededProvidersAreReproducible(t *testing.T) {
	t.Parallel()

	a, b := NewSeeded(1234), NewSeeded(1234)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
		require.Equal(t, a.Float(0, 1), b.Float(0, 1))
	}
}
