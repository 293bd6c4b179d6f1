package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name              string
		val, lo, hi, want float64
	}{
		{"inside", 0.05, 0, 0.1, 0.05},
		{"below", -0.2, 0, 0.1, 0},
		{"above", 2.5, 0, 0.1, 0.1},
		{"at bound", 0.1, 0, 0.1, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 0.5, 5},
		{0, 10, 1, 10},
		{-2.2, 2.2, 0.25, -1.1},
		{0, 10, 1.5, 15}, // not clamped
	}

	for _, tc := range tests {
		result := Lerp(tc.a, tc.b, tc.t)
		if math.Abs(result-tc.expected) > 1e-9 {
			t.Errorf("Lerp(%f, %f, %f) = %f, expected %f", tc.a, tc.b, tc.t, result, tc.expected)
		}
	}
}

func TestColorCode(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{ColorDanger, "9"},
		{ColorGold, "11"},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.c.Code(); got != tc.want {
			t.Errorf("Color(%d).Code() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
