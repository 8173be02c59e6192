// Package geometry provides the planar primitives trees are built from.
// Coordinates follow canvas convention: the origin is top-left and y grows
// downward, so an angle of 270 degrees points up.
package geometry

import "math"

// Point is an immutable cartesian coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Polar returns the point at distance length from p in direction angle,
// measured in degrees.
func (p Point) Polar(length, angle float64) Point {
	rad := DegreesToRadians(angle)
	return p.Add(length*math.Cos(rad), length*math.Sin(rad))
}

// LineSegment is an ordered pair of points.
type LineSegment struct {
	Start Point
	End   Point
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// Translate returns s shifted by (dx, dy).
func (s LineSegment) Translate(dx, dy float64) LineSegment {
	return LineSegment{Start: s.Start.Add(dx, dy), End: s.End.Add(dx, dy)}
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}
