package geometry

import "math"

// Bounds is the axis-aligned extent of a set of points. The zero value is
// empty and absorbs the first point it is extended with.
type Bounds struct {
	Min   Point
	Max   Point
	isSet bool
}

// Extend grows b to include p.
func (b Bounds) Extend(p Point) Bounds {
	if !b.isSet {
		return Bounds{Min: p, Max: p, isSet: true}
	}
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// ExtendSegment grows b to include both ends of s.
func (b Bounds) ExtendSegment(s LineSegment) Bounds {
	return b.Extend(s.Start).Extend(s.End)
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return !b.isSet
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// SegmentBounds returns the extent of all segments.
func SegmentBounds(segments []LineSegment) Bounds {
	var b Bounds
	for _, s := range segments {
		b = b.ExtendSegment(s)
	}
	return b
}

// Normalize shifts segments so the smallest x and y coordinates become zero,
// returning the shifted copies and the covering size rounded up to whole units.
func Normalize(segments []LineSegment) ([]LineSegment, int, int) {
	b := SegmentBounds(segments)
	if b.Empty() {
		return nil, 0, 0
	}
	out := make([]LineSegment, len(segments))
	for i, s := range segments {
		out[i] = s.Translate(-b.Min.X, -b.Min.Y)
	}
	return out, int(math.Ceil(b.Width())), int(math.Ceil(b.Height()))
}
