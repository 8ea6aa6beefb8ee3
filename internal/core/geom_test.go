package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{-1, -1, 1, -1},
		{2, -1, 1, 1},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{55, 0.0, 50.0, 50.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestDampConvergesWithoutOvershoot(t *testing.T) {
	pos := 0.0
	prev := pos
	for i := 0; i < 120; i++ {
		pos = Damp(pos, 3, 15, 1.0/60)
		if pos > 3 {
			t.Fatalf("step %d overshot target: %f", i, pos)
		}
		if pos < prev {
			t.Fatalf("step %d moved away from target: %f < %f", i, pos, prev)
		}
		prev = pos
	}
	if math.Abs(pos-3) > 0.03 {
		t.Errorf("after 2s pos = %f, expected within 1%% of 3", pos)
	}
}

func TestDampNoop(t *testing.T) {
	if got := Damp(1, 5, 0, 0.1); got != 1 {
		t.Errorf("zero rate should not move, got %f", got)
	}
	if got := Damp(1, 5, 10, 0); got != 1 {
		t.Errorf("zero dt should not move, got %f", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{2*math.Pi + 0.5, 0.5},
		{-2*math.Pi - 0.5, -0.5},
		{3 * math.Pi / 2, -math.Pi / 2},
	}

	for _, tc := range tests {
		if got := WrapAngle(tc.in); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("WrapAngle(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
	}
}
