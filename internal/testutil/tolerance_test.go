package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffFloat32(t *testing.T) {
	d, err := MaxAbsDiff([]float32{0.5, 1}, []float32{0.25, 1})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 0.25 {
		t.Fatalf("MaxAbsDiff = %v, want 0.25", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-13, 2}, 1e-12)
	RequireSliceNearlyEqual(t, []float64{1e6}, []float64{1e6 + 0.5}, 1e-6)
	RequireFinite(t, []float32{0, -1, 3.5})
}
