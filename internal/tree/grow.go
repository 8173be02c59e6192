package tree

import (
	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
	"github.com/alexisbeaulieu97/fieldguide/internal/random"
)

// frame is a branch whose children are still being grown.
type frame struct {
	index     int
	end       geometry.Point
	length    float64
	angle     float64
	depth     int
	remaining int
}

// buildBranches expands the tree depth first with an explicit stack. Each
// child's length and angle are drawn immediately before that child is grown,
// the same order a recursive expansion consumes them, so output is identical
// to the recursive definition without its stack depth.
func (t *FractalTree) buildBranches() error {
	root, ok, err := t.grow(t.start, t.params.TrunkLength, t.params.StartAngle, -1, 0)
	if err != nil || !ok {
		return err
	}

	stack := []frame{root}
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].remaining == 0 {
			stack = stack[:top]
			continue
		}
		stack[top].remaining--
		parent := stack[top]

		length := parent.length * t.rng.Float(t.params.MinBranchMultiplier, t.params.MaxBranchMultiplier)
		angle := parent.angle + float64(t.rng.Int(t.params.MinAngle, t.params.MaxAngle))

		child, ok, err := t.grow(parent.end, length, angle, parent.index, parent.depth+1)
		if err != nil {
			return err
		}
		if ok {
			stack = append(stack, child)
		}
	}
	return nil
}

// grow appends one branch and draws its fan-out. Lengths at or below the
// minimum produce nothing.
func (t *FractalTree) grow(start geometry.Point, length, angle float64, parent, depth int) (frame, bool, error) {
	if length <= t.params.MinLength {
		return frame{}, false, nil
	}
	if t.params.MaxDepth > 0 && depth >= t.params.MaxDepth {
		return frame{}, false, ErrDepthExceeded
	}
	if t.params.MaxBranches > 0 && len(t.Branches) >= t.params.MaxBranches {
		return frame{}, false, ErrBranchLimit
	}

	divisor := t.rng.Int(t.params.WidthDivisorMin, t.params.WidthDivisorMax)
	branch := NewBranch(start, length, angle, float64(t.leafThreshold), divisor)
	branch.Parent = parent
	branch.Depth = depth

	index := len(t.Branches)
	t.Branches = append(t.Branches, branch)
	if depth+1 > t.depth {
		t.depth = depth + 1
	}

	return frame{
		index:     index,
		end:       branch.Line.End,
		length:    length,
		angle:     angle,
		depth:     depth,
		remaining: random.Choice(t.rng, t.params.FanOut),
	}, true, nil
}
