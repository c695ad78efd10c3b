// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variate

// Constant is the degenerate variate that is C with probability 1.
//
// Its CDF is a step function, so its derivatives are distributions
// rather than functions. CDF reports the density as +Inf at C and 0
// elsewhere, which requires x to equal C exactly. Rounding in an
// enclosing Affine can move x off C.
type Constant struct {
	C float64
}

// CDF returns 1(C ≤ x) for n = 0 and the Dirac delta at C for n = 1.
// Higher derivatives are not functions, so CDF returns NaN and
// ErrDomain. The result does not depend on s.
func (c Constant) CDF(x, s float64, n int) (float64, error) {
	switch {
	case n < 0:
		return nan, checkOrder(n)
	case n == 0:
		if c.C <= x {
			return 1, nil
		}
		return 0, nil
	case n == 1:
		if x == c.C {
			return inf, nil
		}
		return 0, nil
	}
	return nan, domainError("derivative %d of a point mass CDF", n)
}

// Cumulant returns the n'th derivative of κ(s) = Cs.
func (c Constant) Cumulant(s float64, n int) (float64, error) {
	switch {
	case n < 0:
		return nan, checkOrder(n)
	case n == 0:
		return c.C * s, nil
	case n == 1:
		return c.C, nil
	}
	return 0, nil
}

// EDF is always 0: the Esscher transform of a constant is the same
// constant.
func (c Constant) EDF(x, s float64) (float64, error) {
	return 0, nil
}
