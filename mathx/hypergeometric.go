// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// ConvergencePolicy controls when a HypergeometricSeries stops
// summing terms.
//
// A zero or negative field takes its value from
// DefaultConvergencePolicy.
type ConvergencePolicy struct {
	// Eps is the relative tolerance. A term is small if its
	// magnitude is below Eps times the largest partial sum seen
	// so far (or Eps, if every partial sum is below 1).
	Eps float64

	// Skip is the number of consecutive small terms required
	// before the series is considered converged.
	Skip int

	// Terms is the maximum number of terms to sum.
	Terms int
}

// DefaultConvergencePolicy uses the square root of machine epsilon as
// the relative tolerance and sums at most 40 terms.
var DefaultConvergencePolicy = ConvergencePolicy{
	Eps:   sqrtEpsilon,
	Skip:  40,
	Terms: 40,
}

func (p ConvergencePolicy) withDefaults() ConvergencePolicy {
	if !(p.Eps > 0) {
		p.Eps = DefaultConvergencePolicy.Eps
	}
	if p.Skip <= 0 {
		p.Skip = DefaultConvergencePolicy.Skip
	}
	if p.Terms <= 0 {
		p.Terms = DefaultConvergencePolicy.Terms
	}
	return p
}

// HypergeometricResult describes the outcome of summing a
// hypergeometric series.
//
// Reaching the term limit is not an error. Callers that care about
// accuracy should inspect Last and Small.
type HypergeometricResult struct {
	// Sum is the partial sum of the series.
	Sum float64

	// Last is the last term added to Sum. It is exactly 0 if the
	// series terminated because a numerator parameter is a
	// non-positive integer.
	Last float64

	// Small is the total number of terms that were small
	// according to the convergence policy.
	Small int

	// Iterations is the number of terms summed.
	Iterations int
}

// A HypergeometricSeries sums the generalized hypergeometric series
//
//	pFq(a; b; x) = Σₙ (a₁)ₙ⋯(a_p)ₙ / ((b₁)ₙ⋯(b_q)ₙ) xⁿ/n!
//
// where (v)ₙ = v(v+1)⋯(v+n-1) is the rising Pochhammer symbol.
//
// A HypergeometricSeries holds the running state of one evaluation.
// It must not be used concurrently, but distinct series are
// independent.
type HypergeometricSeries struct {
	a, b  []float64
	n     float64 // index of the next term
	an    float64 // Π (aᵢ)ₙ
	bn    float64 // Π (bⱼ)ₙ
	xn    float64 // xⁿ
	nfact float64 // n!
	pFq   float64 // partial sum
}

// NewHypergeometricSeries returns a series with numerator parameters
// a and denominator parameters b, positioned at term 0.
func NewHypergeometricSeries(a, b []float64) *HypergeometricSeries {
	return &HypergeometricSeries{
		a:     append([]float64(nil), a...),
		b:     append([]float64(nil), b...),
		an:    1,
		bn:    1,
		xn:    1,
		nfact: 1,
	}
}

// Next returns term n of the series at x and advances the series to
// term n+1.
//
// Term n is computed from (a)ₙ and (b)ₙ before they are multiplied
// by a+n and b+n, so term 0 is always 1.
func (h *HypergeometricSeries) Next(x float64) float64 {
	dF := (h.an / h.bn) * h.xn / h.nfact

	for _, ai := range h.a {
		h.an *= ai + h.n
	}
	for _, bi := range h.b {
		h.bn *= bi + h.n
	}
	h.xn *= x
	h.n++
	h.nfact *= h.n

	return dF
}

// Value sums terms of the series at x until policy says it has
// converged, until policy.Terms terms have been summed, or until the
// numerator product becomes zero, after which every term is zero.
//
// Value continues from the current state of h, so it is normally
// called once on a fresh series.
func (h *HypergeometricSeries) Value(x float64, policy ConvergencePolicy) HypergeometricResult {
	policy = policy.withDefaults()

	var dF float64
	maxF := 1.0
	ignore := policy.Skip // consecutive small terms still to see
	small, iters := 0, 0

	for h.an != 0 && ignore > 0 && iters < policy.Terms {
		dF = h.Next(x)
		h.pFq += dF
		maxF = math.Max(maxF, math.Abs(h.pFq))

		if math.Abs(dF) < maxF*policy.Eps {
			small++
			ignore--
		} else {
			ignore = policy.Skip
		}

		iters++
	}

	if h.an == 0 {
		dF = 0
	}
	return HypergeometricResult{Sum: h.pFq, Last: dF, Small: small, Iterations: iters}
}

// Sum returns the partial sum accumulated so far.
func (h *HypergeometricSeries) Sum() float64 {
	return h.pFq
}

// Regularized returns the partial sum divided by Π Γ(bⱼ). It does
// not sum any further terms.
func (h *HypergeometricSeries) Regularized() float64 {
	F := h.pFq
	for _, bi := range h.b {
		F /= math.Gamma(bi)
	}
	return F
}

// HypergeometricPFQ returns pFq(a; b; x), or the regularized value
// pFq(a; b; x)/Π Γ(bⱼ) if regularized is true. If policy is nil,
// DefaultConvergencePolicy is used.
func HypergeometricPFQ(a, b []float64, x float64, regularized bool, policy *ConvergencePolicy) float64 {
	p := DefaultConvergencePolicy
	if policy != nil {
		p = *policy
	}

	pFq := NewHypergeometricSeries(a, b)
	res := pFq.Value(x, p)
	if regularized {
		return pFq.Regularized()
	}
	return res.Sum
}
