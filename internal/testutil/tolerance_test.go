package testutil

import (
	"math"
	"testing"
)

func TestMaxStep(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{[]float64{0, 0.5, 0.25, 1.5}, 1.25},
		{[]float64{3}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := MaxStep(tt.in); got != tt.want {
			t.Fatalf("MaxStep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDB(t *testing.T) {
	if got := DB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("DB(10) = %v, want 20", got)
	}

	if got := DB(math.Sqrt(0.5)); math.Abs(got+3.0103) > 1e-4 {
		t.Fatalf("DB(sqrt(0.5)) = %v, want -3.0103", got)
	}
}

func TestRequireHelpersAcceptGoodInput(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
	RequireFinite(t, []float64{0, -1e300, 1e300})
	RequireInsideUnitCircle(t, []complex128{0.5i, complex(-0.99, 0)})
}
