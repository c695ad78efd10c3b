// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Lgamma returns log|Γ(x)|.
func Lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// Digamma returns the digamma function ψ(x) = d/dx log Γ(x).
//
// It returns NaN at the poles x = 0, -1, -2, ... and for NaN.
func Digamma(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return nan
	case math.IsInf(x, 1):
		return x
	case x <= 0 && x == math.Floor(x):
		return nan
	case x < 0:
		// Reflection: ψ(1-x) - ψ(x) = π cot(πx).
		return Digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
	}

	// Recur up to x >= 10, then use the asymptotic series
	//
	//	ψ(x) ~ log x - 1/(2x) - Σₖ B₂ₖ/(2k x²ᵏ)
	var r float64
	for x < 10 {
		r -= 1 / x
		x++
	}
	f := 1 / (x * x)
	t := f * (-1.0/12 + f*(1.0/120+f*(-1.0/252+f*(1.0/240+f*(-1.0/132+f*(691.0/32760+f*(-1.0/12)))))))
	return r + math.Log(x) - 0.5/x + t
}

// Polygamma returns the polygamma function ψ⁽ⁿ⁾(x), the n'th
// derivative of the digamma function. Polygamma(0, x) is Digamma(x).
//
// It returns NaN if n < 0 or if x is a pole (a non-positive integer).
func Polygamma(n int, x float64) float64 {
	switch {
	case n < 0 || math.IsNaN(x):
		return nan
	case n == 0:
		return Digamma(x)
	case x <= 0 && x == math.Floor(x):
		return nan
	case math.IsInf(x, 1):
		return 0
	}

	// For n >= 1, ψ⁽ⁿ⁾(x) = (-1)ⁿ⁺¹ n! ζ(n+1, x) where ζ is the
	// Hurwitz zeta function.
	f := math.Exp(Lgamma(float64(n+1))) * mathext.Zeta(float64(n+1), x)
	if n%2 == 0 {
		return -f
	}
	return f
}
