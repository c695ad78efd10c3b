// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variate

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got float64) bool {
	return scalar.EqualWithinAbsOrRel(expect, got, 1e-12, 1e-12)
}

// span returns n equally spaced points from lo to hi.
func span(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// steps are the finite difference steps used by checkDerivative.
var steps = []float64{1e-2, 1e-3, 1e-4}

// checkDerivative checks that df(x) agrees with the central difference
// of f at x for each step h. The central difference has error
// f'''(x)h²/6 + O(h⁴), so the two should agree to within a modest
// multiple of h².
func checkDerivative(t *testing.T, name string, f, df func(float64) float64, xs []float64) {
	t.Helper()
	for _, x := range xs {
		want := df(x)
		for _, h := range steps {
			got := fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h})
			tol := 150 * math.Max(1, math.Max(math.Abs(want), math.Abs(got))) * h * h
			if !(math.Abs(want-got) < tol) {
				t.Errorf("%s at %v: analytic %v, central difference with h=%v gives %v", name, x, want, h, got)
			}
		}
	}
}

// must adapts a fallible function for checkDerivative.
func must(t *testing.T, f func(float64) (float64, error)) func(float64) float64 {
	t.Helper()
	return func(x float64) float64 {
		v, err := f(x)
		if err != nil {
			t.Fatalf("unexpected error at %v: %v", x, err)
		}
		return v
	}
}

// ok returns a function that unwraps a single result for table
// checks, failing t on error.
func ok(t *testing.T) func(float64, error) float64 {
	return func(v float64, err error) float64 {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	}
}
