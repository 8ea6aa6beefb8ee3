// Package core provides fundamental types and utilities for the arcade platform.
// It has no external dependencies (no Bubble Tea, no network) so the simulation
// stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Damp moves current toward target by the frame-rate independent fraction
// 1 - exp(-rate*dt). The result never passes target for rate, dt >= 0.
func Damp(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	return current + (target-current)*(1-math.Exp(-rate*dt))
}

// WrapAngle maps an angle in radians into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	return math.Atan2(math.Sin(a), math.Cos(a))
}
