// Package core provides fundamental types and utilities for the arkanoid
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in play-field pixels.
// Rect values are immutable: transforms return a new rectangle.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Middle returns the vertical midpoint, rounded toward the bottom edge the
// same way the collision checks expect (bottom minus truncated half height).
func (r Rect) Middle() float64 {
	return r.Bottom() - math.Trunc(r.H/2)
}

// MoveTo returns the rectangle placed at (x, y) with the same size.
func (r Rect) MoveTo(x, y float64) Rect {
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// Intersects reports whether two rectangles overlap.
// Closed intervals are used: rectangles sharing an edge or a corner intersect.
func (r Rect) Intersects(other Rect) bool {
	return math.Min(r.Right(), other.Right()) >= math.Max(r.Left(), other.Left()) &&
		math.Min(r.Bottom(), other.Bottom()) >= math.Max(r.Top(), other.Top())
}

// Resize returns a rectangle grown by the signed deltas. The origin is kept.
func (r Rect) Resize(dw, dh float64) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W + dw, H: r.H + dh}
}

// Relocate returns a rectangle shifted by the signed deltas. The size is kept.
func (r Rect) Relocate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Transform relocates and then resizes.
func (r Rect) Transform(dx, dy, dw, dh float64) Rect {
	return r.Relocate(dx, dy).Resize(dw, dh)
}

// Vec is a 2D direction or displacement.
type Vec struct {
	X, Y float64
}

// VecFromAngle returns the unit vector for an angle in radians.
// Screen coordinates: negative angles point up.
func VecFromAngle(rad float64) Vec {
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Len returns the vector length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Normalize rescales the vector to unit length.
// The zero vector has no direction; normalizing it yields NaN components.
func (v Vec) Normalize() Vec {
	l := v.Len()
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0, or 1.
func Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
