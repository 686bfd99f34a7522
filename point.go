package ggui

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned rectangle given by two corners.
//
// Min is the top-left and Max the bottom-right corner in screen space. In
// content space the corners may be swapped (flipped axes), so Rect does
// not require Min <= Max; use Canon where ordering matters.
type Rect struct {
	Min, Max Point
}

// R is a convenience function to create a Rect from its bounds.
func R(left, top, right, bottom float64) Rect {
	return Rect{Min: Pt(left, top), Max: Pt(right, bottom)}
}

// Dx returns the signed width.
func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns the signed height.
func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Canon returns r with Min <= Max on both axes.
func (r Rect) Canon() Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, r.Max.X), math.Min(r.Min.Y, r.Max.Y)),
		Max: Pt(math.Max(r.Min.X, r.Max.X), math.Max(r.Min.Y, r.Max.Y)),
	}
}

// Contains reports whether p lies inside r. Like image.Rectangle, the
// minimum edges are inclusive and the maximum edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}
