package service

import (
	"math"
	"testing"
)

func TestInterpolateLinear(t *testing.T) {
	xs := []float64{0, 1, 2, 4}
	ys := []float64{10, 12, 16, 16}

	tests := []struct {
		x    float64
		want float64
	}{
		{0, 10},
		{0.5, 11},
		{1, 12},
		{3, 16},
		{4, 16},
		{-1, 8},   // first segment extended
		{-2.5, 5}, // still linear
		{6, 16},   // last segment is flat
	}

	for _, tt := range tests {
		if got := interpolateLinear(xs, ys, tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("interpolateLinear(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestInterpolateLinear_ExtrapolatesWithEdgeSlope(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 6, 7, 8, 9}
	ys := []float64{1, 2, 3, 4, 5, 7, 8, 9, 11}

	if got := interpolateLinear(xs, ys, 10); math.Abs(got-13) > 1e-12 {
		t.Errorf("above range: got %v, want 13", got)
	}
	if got := interpolateLinear(xs, ys, -2); math.Abs(got+1) > 1e-12 {
		t.Errorf("below range: got %v, want -1", got)
	}
	if got := interpolateLinear(xs, ys, 5); math.Abs(got-6) > 1e-12 {
		t.Errorf("gap between 4 and 6: got %v, want 6", got)
	}
}

func TestBracketOrBoundary(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 6, 7, 8, 9}

	tests := []struct {
		x      float64
		lo, hi int
	}{
		{-5, 0, 1},
		{0, 0, 1},
		{0.2, 0, 1},
		{4, 3, 4},
		{5, 4, 5},
		{9, 7, 8},
		{42, 7, 8},
	}

	for _, tt := range tests {
		lo, hi := bracketOrBoundary(xs, tt.x)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("bracketOrBoundary(%v) = (%d, %d), want (%d, %d)", tt.x, lo, hi, tt.lo, tt.hi)
		}
	}
}
