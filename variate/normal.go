// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variate

import "math"

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Normal is the standard normal variate with mean 0 and variance 1.
// Use NewAffine or NormalWith for other means and variances.
//
// The Esscher transform of the standard normal by s is normal with
// mean s and variance 1.
type Normal struct{}

// StdNormal is the standard normal variate.
var StdNormal = Normal{}

// NormalWith returns the normal variate with mean mu and standard
// deviation sigma. A sigma of 0 is taken to be 1.
func NormalWith(mu, sigma float64) Affine {
	return NewAffine(StdNormal, mu, sigma)
}

// Hermite returns the probabilists' Hermite polynomial Heₙ(x),
// defined by He₀(x) = 1, He₁(x) = x and
//
//	Heₙ₊₁(x) = x Heₙ(x) - n Heₙ₋₁(x)
//
// It returns NaN for n < 0.
func Hermite(n int, x float64) float64 {
	if n < 0 {
		return nan
	}
	h0, h1 := 1.0, x
	if n == 0 {
		return h0
	}
	for k := 1; k < n; k++ {
		h0, h1 = h1, x*h1-float64(k)*h0
	}
	return h1
}

func (Normal) CDF(x, s float64, n int) (float64, error) {
	if err := checkOrder(n); err != nil {
		return nan, err
	}

	z := x - s
	if n == 0 {
		return math.Erfc(-z/math.Sqrt2) / 2, nil
	}

	phi := math.Exp(-z*z/2) * invSqrt2Pi
	if n == 1 {
		return phi, nil
	}

	// (d/dz)ᵐ φ(z) = (-1)ᵐ Heₘ(z) φ(z) with m = n-1.
	f := phi * Hermite(n-1, z)
	if n%2 == 0 {
		f = -f
	}
	return f, nil
}

// Cumulant returns the n'th derivative of κ(s) = s²/2.
func (Normal) Cumulant(s float64, n int) (float64, error) {
	switch {
	case n < 0:
		return nan, checkOrder(n)
	case n == 0:
		return s * s / 2, nil
	case n == 1:
		return s, nil
	case n == 2:
		return 1, nil
	}
	return 0, nil
}

// EDF returns -φ(x-s), since s only shifts the distribution.
func (v Normal) EDF(x, s float64) (float64, error) {
	f, err := v.CDF(x, s, 1)
	return -f, err
}
