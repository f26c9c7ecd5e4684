package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func vecAlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		deg      float64
		expected Vec2
	}{
		{"zero angle", V(1, 0), 0, V(1, 0)},
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"half turn", V(0, 1), 180, V(0, -1)},
		{"negative quarter", V(1, 0), -90, V(0, -1)},
		{"full turn", V(3, 4), 360, V(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.v.Rotate(tc.deg)
			if !vecAlmostEqual(result, tc.expected) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.deg, result, tc.expected)
			}
			// Rotation preserves length
			if !almostEqual(result.Len(), tc.v.Len()) {
				t.Errorf("Rotate changed length: %f -> %f", tc.v.Len(), result.Len())
			}
		})
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !vecAlmostEqual(n, V(0.6, 0.8)) {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}

	// Zero vector has no direction and must not produce NaN
	z := V(0, 0).Normalize()
	if z.IsNaN() || !z.IsZero() {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}
}

func TestVecDistanceSymmetric(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)
	if !almostEqual(a.Distance(b), 5) {
		t.Errorf("Distance = %f, expected 5", a.Distance(b))
	}
	if a.Distance(b) != b.Distance(a) {
		t.Error("Distance should be symmetric")
	}
}

func TestForward(t *testing.T) {
	if !vecAlmostEqual(Forward(0), V(0, 1)) {
		t.Errorf("Forward(0) = %v, expected pointing down", Forward(0))
	}
	if !vecAlmostEqual(Forward(180), V(0, -1)) {
		t.Errorf("Forward(180) = %v, expected pointing up", Forward(180))
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-720, 0},
	}

	for _, tc := range tests {
		result := NormalizeDegrees(tc.in)
		if !almostEqual(result, tc.expected) {
			t.Errorf("NormalizeDegrees(%f) = %f, expected %f", tc.in, result, tc.expected)
		}
	}
}

func TestViewportContains(t *testing.T) {
	vp := Viewport{Width: 100, Height: 50}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(10, 10), true},
		{"top-left corner", V(0, 0), true},
		{"bottom-right corner", V(100, 50), true},
		{"left of viewport", V(-0.1, 10), false},
		{"right of viewport", V(100.1, 10), false},
		{"above viewport", V(10, -1), false},
		{"below viewport", V(10, 51), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := vp.Contains(tc.p); result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestViewportWrap(t *testing.T) {
	vp := Viewport{Width: 100, Height: 50}

	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"inside unchanged", V(10, 10), V(10, 10)},
		{"past right edge", V(103, 10), V(3, 10)},
		{"past left edge", V(-2, 10), V(98, 10)},
		{"past bottom edge", V(10, 55), V(10, 5)},
		{"past top edge", V(10, -5), V(10, 45)},
		{"past corner", V(-1, 51), V(99, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := vp.Wrap(tc.p)
			if !vecAlmostEqual(result, tc.expected) {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}
