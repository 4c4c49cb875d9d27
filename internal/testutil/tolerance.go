package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireInsideUnitCircle fails t if any pole has magnitude >= 1 or is
// not finite.
func RequireInsideUnitCircle(t *testing.T, poles []complex128) {
	t.Helper()
	for i, p := range poles {
		if cmplx.IsNaN(p) || cmplx.IsInf(p) {
			t.Fatalf("pole %d: non-finite value %v", i, p)
		}
		if r := cmplx.Abs(p); r >= 1 {
			t.Fatalf("pole %d: |%v| = %.12f, want < 1", i, p, r)
		}
	}
}

// MaxStep returns the largest absolute difference between consecutive
// samples.
func MaxStep(x []float64) float64 {
	maxStep := 0.0
	for i := 1; i < len(x); i++ {
		if d := math.Abs(x[i] - x[i-1]); d > maxStep {
			maxStep = d
		}
	}
	return maxStep
}

// DB converts a linear magnitude to decibels.
func DB(mag float64) float64 {
	return 20 * math.Log10(mag)
}
