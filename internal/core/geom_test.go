package core

import (
	"math"
	"testing"
)

func TestRectFContains(t *testing.T) {
	r := NewRectF(100, 450, 200, 20)
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 150, 460, true},
		{"top-left corner", 100, 450, true},
		{"right edge", 300, 460, false},
		{"bottom edge", 150, 470, false},
		{"above", 150, 449.9, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", NewRectF(0, 0, 32, 32), NewRectF(16, 16, 100, 20), true},
		{"resting on top edge", NewRectF(100, 398, 32, 32), NewRectF(50, 430, 200, 20), false},
		{"sunk into top edge", NewRectF(100, 398.8, 32, 32), NewRectF(50, 430, 200, 20), true},
		{"side by side", NewRectF(0, 0, 32, 32), NewRectF(32, 0, 32, 32), false},
		{"far apart", NewRectF(0, 0, 10, 10), NewRectF(500, 500, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFCenter(t *testing.T) {
	cx, cy := NewRectF(100, 450, 32, 32).Center()
	if cx != 116 || cy != 466 {
		t.Errorf("Center() = (%v, %v), expected (116, 466)", cx, cy)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, expected 5", d)
	}
	if d := Distance(10, 10, 10, 10); d != 0 {
		t.Errorf("Distance of a point to itself = %v, expected 0", d)
	}
	if d := Distance(-1, -1, 1, 1); math.Abs(d-2*math.Sqrt2) > 1e-9 {
		t.Errorf("Distance(-1,-1,1,1) = %v", d)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{780, 0.0, 768.0, 768.0},
		{0, 0, 768, 0},
		{768, 0, 768, 768},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
