// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsInf(expect, 0) {
		return math.IsNaN(got) && math.IsNaN(expect) || expect == got
	}
	return scalar.EqualWithinAbsOrRel(expect, got, 1e-12, 1e-12)
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, out := range vals {
		got := f(in)
		if !aeq(out, got) {
			t.Errorf("%s(%v) = %v; want %v", name, in, got, out)
		}
	}
}
