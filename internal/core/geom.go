// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Vec2 is a position in world coordinates. The world origin is the center
// of the road; +Y is up, +X is the direction obstacles come from.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned bounding box in world coordinates, described by
// its center and half-extents. Used for collision detection between
// world-space entities.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// Overlaps returns true if this box overlaps with another.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	if b.Center.X-b.HalfW >= other.Center.X+other.HalfW ||
		other.Center.X-other.HalfW >= b.Center.X+b.HalfW {
		return false
	}
	if b.Center.Y-b.HalfH >= other.Center.Y+other.HalfH ||
		other.Center.Y-other.HalfH >= b.Center.Y+b.HalfH {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
