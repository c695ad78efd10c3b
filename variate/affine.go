// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variate

import "math"

// Affine is the variate μ + σX for an underlying variate X.
//
// Affine only rescales the arguments and results of X, so it works
// with any Variate.
type Affine struct {
	v         Variate
	mu, sigma float64
}

// NewAffine returns the variate mu + sigma*v. A sigma of 0 is taken
// to be 1.
func NewAffine(v Variate, mu, sigma float64) Affine {
	if sigma == 0 {
		sigma = 1
	}
	return Affine{v: v, mu: mu, sigma: sigma}
}

// Underlying returns the variate X.
func (a Affine) Underlying() Variate { return a.v }

// Mu returns the location μ.
func (a Affine) Mu() float64 { return a.mu }

// Sigma returns the scale σ. It is never 0.
func (a Affine) Sigma() float64 { return a.sigma }

// CDF returns the n'th x-derivative of the Esscher transformed CDF.
// The transform of μ + σX by s is μ + σ times the transform of X by
// σs, so this is
//
//	X.CDF((x-μ)/σ, σs, n) / σⁿ
func (a Affine) CDF(x, s float64, n int) (float64, error) {
	f, err := a.v.CDF((x-a.mu)/a.sigma, a.sigma*s, n)
	if err != nil {
		return f, err
	}
	return f / math.Pow(a.sigma, float64(n)), nil
}

// Cumulant returns the n'th derivative of κ(s) = μs + κ_X(σs).
func (a Affine) Cumulant(s float64, n int) (float64, error) {
	k, err := a.v.Cumulant(a.sigma*s, n)
	if err != nil {
		return k, err
	}
	k *= math.Pow(a.sigma, float64(n))
	switch n {
	case 0:
		k += a.mu * s
	case 1:
		k += a.mu
	}
	return k, nil
}

// EDF returns σ X.EDF((x-μ)/σ, σs).
func (a Affine) EDF(x, s float64) (float64, error) {
	f, err := a.v.EDF((x-a.mu)/a.sigma, a.sigma*s)
	if err != nil {
		return f, err
	}
	return a.sigma * f, nil
}
