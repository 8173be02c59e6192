package tree

import (
	"math"

	"github.com/alexisbeaulieu97/fieldguide/internal/geometry"
)

// Branch is one drawn segment of a tree.
type Branch struct {
	Line  geometry.LineSegment
	Width int
	// Leaf marks branches short enough to be drawn in foliage colour.
	Leaf bool
	// Parent is the index of the branch this one grew from, -1 for the trunk.
	Parent int
	Depth  int
}

// NewBranch builds a branch of the given length and angle (degrees) starting
// at start. Its width is the length divided by widthDivisor, at least 1.
func NewBranch(start geometry.Point, length, angle float64, leafThreshold float64, widthDivisor int) Branch {
	line := geometry.LineSegment{Start: start, End: start.Polar(length, angle)}
	actual := line.Length()

	width := int(math.Floor(actual / float64(widthDivisor)))
	if width < 1 {
		width = 1
	}

	return Branch{
		Line:   line,
		Width:  width,
		Leaf:   actual <= leafThreshold,
		Parent: -1,
	}
}

// Length returns the length of the branch segment.
func (b Branch) Length() float64 {
	return b.Line.Length()
}
