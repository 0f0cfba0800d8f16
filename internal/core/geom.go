// Package core provides fundamental types and utilities shared by the
// simulation engine and the platform layers. It contains no external
// dependencies (especially no Bubble Tea) to keep engine logic pure and
// testable.
package core

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Dist2 returns the squared Euclidean distance between two points.
// Callers compare against radius*radius to avoid the square root.
func Dist2(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
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
