// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Beta returns the complete beta function B(a, b) = Γ(a)Γ(b)/Γ(a+b)
// for a, b > 0.
func Beta(a, b float64) float64 {
	if !(a > 0 && b > 0) {
		return nan
	}
	return mathext.Beta(a, b)
}

// Lbeta returns log B(a, b) for a, b > 0.
func Lbeta(a, b float64) float64 {
	if !(a > 0 && b > 0) {
		return nan
	}
	return mathext.Lbeta(a, b)
}

// BetaDA returns the partial derivative of B(a, b) with respect to a,
//
//	∂B(a, b)/∂a = B(a, b) (ψ(a) - ψ(a+b)).
func BetaDA(a, b float64) float64 {
	return Beta(a, b) * (Digamma(a) - Digamma(a+b))
}

// BetaInc returns the regularized incomplete beta function
//
//	Iᵤ(a, b) = 1 / B(a, b) * ∫₀ᵘ t**(a-1) (1-t)**(b-1) dt
//
// It returns NaN unless a > 0, b > 0, and 0 <= u <= 1.
func BetaInc(a, b, u float64) float64 {
	if !betaIncDomain(a, b, u) {
		return nan
	}
	return mathext.RegIncBeta(a, b, u)
}

func betaIncDomain(a, b, u float64) bool {
	return a > 0 && b > 0 && 0 <= u && u <= 1
}

// betaIncSeriesTerms bounds the series summed by BetaIncPartials.
const betaIncSeriesTerms = 1 << 17

// BetaIncDA returns the partial derivative of Iᵤ(a, b) with respect
// to a. See BetaIncPartials.
func BetaIncDA(a, b, u float64) float64 {
	da, _ := BetaIncPartials(a, b, u, 1-u)
	return da
}

// BetaIncDB returns the partial derivative of Iᵤ(a, b) with respect
// to b. See BetaIncPartials.
func BetaIncDB(a, b, u float64) float64 {
	_, db := BetaIncPartials(a, b, u, 1-u)
	return db
}

// BetaIncPartials returns the partial derivatives of Iᵤ(a, b) with
// respect to a and b. The caller supplies both u and v = 1-u so that
// whichever is small keeps its full relative precision.
//
// For u at or below the mean a/(a+b), it differentiates the series
//
//	Iᵤ(a, b) = Σₙ uᵃ⁺ⁿ vᵇ Γ(a+b+n) / (Γ(b) Γ(a+n+1))
//
// term by term. The terms are positive and decreasing, so the sum
// does not cancel for any a and b. Above the mean it applies the same
// series to Iᵤ(a, b) = 1 - I_v(b, a).
//
// The results are NaN if the series has not converged after many
// terms, which can only happen for very large a and b.
func BetaIncPartials(a, b, u, v float64) (da, db float64) {
	if !betaIncDomain(a, b, u) || !(0 <= v && v <= 1) {
		return nan, nan
	}
	if u == 0 || v == 0 {
		return 0, 0
	}
	return betaIncDA(a, b, u, v), -betaIncDA(b, a, v, u)
}

// betaIncDA returns ∂/∂a Iᵤ(a, b) for 0 < u, v < 1 with v = 1-u.
func betaIncDA(a, b, u, v float64) float64 {
	lu, lv := math.Log(u), math.Log(v)
	if u > 0.5 {
		lu = math.Log1p(-v)
	} else {
		lv = math.Log1p(-u)
	}

	if u <= a/(a+b) {
		// ∂/∂a of term n is the term times
		// log u + ψ(a+b+n) - ψ(a+n+1).
		d0 := lu + Digamma(a+b) - Digamma(a+1)
		return incBetaSeries(a, b, u, lu, lv, d0, 1)
	}
	// Here ∂/∂a of term n of I_v(b, a) is the term times
	// log u + ψ(a+b+n) - ψ(a).
	d0 := lu + Digamma(a+b) - Digamma(a)
	return -incBetaSeries(b, a, v, lv, lu, d0, 0)
}

// incBetaSeries returns Σₙ Tₙ dₙ where
//
//	Tₙ = xᵖ⁺ⁿ (1-x)^q Γ(p+q+n) / (Γ(q) Γ(p+n+1))
//
// are the terms of Iₓ(p, q), lx and lcx are log x and log(1-x), and
// dₙ₊₁ = dₙ + 1/(p+q+n) - c/(p+n+1). It requires x <= p/(p+q), where
// the terms decrease from the first.
func incBetaSeries(p, q, x, lx, lcx, d0, c float64) float64 {
	t := math.Exp(p*lx + q*lcx + Lgamma(p+q) - Lgamma(q) - Lgamma(p+1))
	d := d0
	var sum, abs float64
	for n := 0.0; n < betaIncSeriesTerms; n++ {
		sum += t * d
		abs += t * math.Abs(d)

		r := (p + q + n) * x / (p + n + 1)
		t *= r
		d += 1/(p+q+n) - c/(p+n+1)

		// The ratios tend to x, so the remaining terms sum to at
		// most t/(1 - max(r, x)).
		tail := t / (1 - math.Max(r, x)) * (1 + math.Abs(d))
		if tail <= epsilon*abs {
			return sum
		}
	}
	return nan
}
