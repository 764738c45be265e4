package mathutil

import (
	"math"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{2, 3, 5},
		{-1, 1, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Add(tt.a, tt.b); got != tt.want {
			t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{4, 5, 20},
		{-2, 3, -6},
		{0, 7, 0},
	}
	for _, tt := range tests {
		if got := Multiply(tt.a, tt.b); got != tt.want {
			t.Errorf("Multiply(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCircleArea(t *testing.T) {
	if got := CircleArea(1); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("CircleArea(1) = %v, want pi", got)
	}
	if got := CircleArea(2); math.Abs(got-4*math.Pi) > 1e-12 {
		t.Errorf("CircleArea(2) = %v, want 4*pi", got)
	}
}

func TestFprintResult(t *testing.T) {
	var sb strings.Builder
	FprintResult(&sb, 42)
	if got := sb.String(); got != "Result: 42\n" {
		t.Errorf("FprintResult(42) = %q, want %q", got, "Result: 42\n")
	}
}
