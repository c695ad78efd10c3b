// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variate

import (
	"math"

	"github.com/fms-lib/go-variate/mathx"
)

// Discrete is a variate taking finitely many values. Its Esscher
// transform by s reweights the probability pᵢ of xᵢ to
// pᵢ exp(s xᵢ - κ(s)).
//
// As with Constant, the x-derivatives of the CDF are distributions:
// the density is +Inf at any atom and 0 elsewhere.
type Discrete struct {
	xs, ps []float64
}

// NewDiscrete returns the variate that takes value xs[i] with
// probability proportional to ps[i]. The weights must be
// non-negative with a positive sum.
func NewDiscrete(xs, ps []float64) (Discrete, error) {
	if len(xs) != len(ps) {
		return Discrete{}, domainError("len(xs) = %d != len(ps) = %d", len(xs), len(ps))
	}
	var total float64
	for i, p := range ps {
		if !(p >= 0) || math.IsInf(p, 1) {
			return Discrete{}, domainError("weight ps[%d] = %v", i, p)
		}
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return Discrete{}, domainError("value xs[%d] = %v", i, xs[i])
		}
		total += p
	}
	if !(total > 0) {
		return Discrete{}, domainError("weights sum to %v", total)
	}

	d := Discrete{xs: make([]float64, 0, len(xs)), ps: make([]float64, 0, len(ps))}
	for i, p := range ps {
		if p == 0 {
			continue
		}
		d.xs = append(d.xs, xs[i])
		d.ps = append(d.ps, p/total)
	}
	return d, nil
}

// Binomial returns the number of successes in n independent trials
// that each succeed with probability p.
func Binomial(n int, p float64) (Discrete, error) {
	if n < 0 || !(0 <= p && p <= 1) {
		return Discrete{}, domainError("binomial n = %d, p = %v", n, p)
	}
	xs := make([]float64, n+1)
	ps := make([]float64, n+1)
	for k := range xs {
		xs[k] = float64(k)
		ps[k] = mathx.Choose(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	return NewDiscrete(xs, ps)
}

// Values returns the atoms of d that have positive probability.
func (d Discrete) Values() []float64 {
	return append([]float64(nil), d.xs...)
}

// Probabilities returns the normalized probabilities of the atoms
// returned by Values.
func (d Discrete) Probabilities() []float64 {
	return append([]float64(nil), d.ps...)
}

// tilt returns the probabilities of the Esscher transform by s and
// κ(s).
func (d Discrete) tilt(s float64) (ws []float64, kappa float64) {
	ws = make([]float64, len(d.ps))
	if s == 0 {
		copy(ws, d.ps)
		return ws, 0
	}

	// Factor out the largest exponent so exp cannot overflow.
	m := math.Inf(-1)
	for _, x := range d.xs {
		m = math.Max(m, s*x)
	}
	var z float64
	for i, p := range d.ps {
		ws[i] = p * math.Exp(s*d.xs[i]-m)
		z += ws[i]
	}
	for i := range ws {
		ws[i] /= z
	}
	return ws, m + math.Log(z)
}

func (d Discrete) CDF(x, s float64, n int) (float64, error) {
	switch {
	case n < 0:
		return nan, checkOrder(n)
	case n == 1:
		for _, xi := range d.xs {
			if x == xi {
				return inf, nil
			}
		}
		return 0, nil
	case n >= 2:
		return nan, domainError("derivative %d of a discrete CDF", n)
	}

	ws, _ := d.tilt(s)
	var F float64
	for i, xi := range d.xs {
		if xi <= x {
			F += ws[i]
		}
	}
	return math.Min(F, 1), nil
}

// Cumulant returns κ(s) = log Σ pᵢ exp(s xᵢ) for n = 0 and otherwise
// the n'th cumulant of the Esscher transform by s.
func (d Discrete) Cumulant(s float64, n int) (float64, error) {
	if err := checkOrder(n); err != nil {
		return nan, err
	}
	ws, kappa := d.tilt(s)
	switch n {
	case 0:
		return kappa, nil
	case 1:
		return d.mean(ws), nil
	}

	// Cumulants of order ≥ 2 do not depend on location, so use
	// central moments μⱼ and the recursion
	//
	//	κⱼ = μⱼ - Σᵢ₌₁ʲ⁻¹ C(j-1, i-1) κᵢ μⱼ₋ᵢ
	//
	// with κ₁ = μ₁ = 0.
	mean := d.mean(ws)
	mu := make([]float64, n+1)
	for i, xi := range d.xs {
		c, p := xi-mean, ws[i]
		for j := 1; j <= n; j++ {
			p *= c
			mu[j] += p
		}
	}
	mu[1] = 0
	kappas := make([]float64, n+1)
	for j := 2; j <= n; j++ {
		k := mu[j]
		for i := 2; i < j; i++ {
			k -= mathx.Choose(j-1, i-1) * kappas[i] * mu[j-i]
		}
		kappas[j] = k
	}
	return kappas[n], nil
}

func (d Discrete) mean(ws []float64) float64 {
	var m float64
	for i, xi := range d.xs {
		m += ws[i] * xi
	}
	return m
}

// EDF returns Σ_{xᵢ ≤ x} wᵢ (xᵢ - κ'(s)), where wᵢ are the
// probabilities of the Esscher transform by s.
func (d Discrete) EDF(x, s float64) (float64, error) {
	ws, _ := d.tilt(s)
	mean := d.mean(ws)
	var f float64
	for i, xi := range d.xs {
		if xi <= x {
			f += ws[i] * (xi - mean)
		}
	}
	return f, nil
}
