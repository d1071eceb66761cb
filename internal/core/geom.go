// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a 2D vector with float64 components.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new vector.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Rect represents an axis-aligned bounding box described by its center
// and full size, matching transform semantics (translation + scale).
// The y-axis grows upward, as in the game world.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// NewRect creates a rectangle from center coordinates and dimensions.
func NewRect(cx, cy, w, h float64) Rect {
	return Rect{Center: Vec2{X: cx, Y: cy}, Size: Vec2{X: w, Y: h}}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 {
	return r.Center.X - r.Size.X/2
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.Center.X + r.Size.X/2
}

// MinY returns the y-coordinate of the bottom edge.
func (r Rect) MinY() float64 {
	return r.Center.Y - r.Size.Y/2
}

// MaxY returns the y-coordinate of the top edge.
func (r Rect) MaxY() float64 {
	return r.Center.Y + r.Size.Y/2
}

// Overlaps returns true if this rectangle intersects another.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.MinX() >= other.MaxX() || other.MinX() >= r.MaxX() {
		return false
	}
	if r.MinY() >= other.MaxY() || other.MinY() >= r.MaxY() {
		return false
	}
	return true
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
