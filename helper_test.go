package finmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats and float slices with a relative and absolute margin.
var approx = cmpopts.EquateApprox(1e-9, 1e-9)

// near reports whether got is within tol of want.
func near(got, want, tol float64) bool { return math.Abs(got-want) <= tol }

// scalar unwraps a scalar Array, failing the test otherwise.
func scalar(t *testing.T, a Array) float64 {
	t.Helper()
	v, ok := a.Float()
	if !ok {
		t.Fatalf("got vector %v, want a scalar", a)
	}
	return v
}

// vector unwraps a vector Array, failing the test otherwise.
func vector(t *testing.T, a Array) []float64 {
	t.Helper()
	if a.IsScalar() {
		t.Fatalf("got scalar %v, want a vector", a)
	}
	return a.Values()
}

func diff(got, want any) string { return cmp.Diff(want, got, approx) }
