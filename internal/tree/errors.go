package tree

import "errors"

var (
	// ErrAlreadyGenerated is returned when Generate runs twice on one tree.
	ErrAlreadyGenerated = errors.New("tree already generated")
	// ErrDepthExceeded reports a generation chain deeper than Params.MaxDepth.
	ErrDepthExceeded = errors.New("branch depth cap exceeded")
	// ErrBranchLimit reports more branches than Params.MaxBranches.
	ErrBranchLimit = errors.New("branch count cap exceeded")
)
