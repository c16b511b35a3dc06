// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

import "math"

// RectF is an axis-aligned bounding box in world (logical pixel) space.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right is the x of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom is the y of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the midpoint.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside r or on its top-left edges.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Overlaps reports strict AABB overlap. Touching edges do not overlap.
func (r RectF) Overlaps(other RectF) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
