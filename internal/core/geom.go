// Package core provides fundamental types and utilities shared by the runner
// engine and its front-ends. It has no external dependencies (especially no
// Bubble Tea) so the simulation stays pure and testable.
package core

// Rect is an axis-aligned box on the screen grid, used by overlay panels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a value to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp linearly interpolates from a toward b by t.
// t is not clamped, matching frame-rate based smoothing.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
