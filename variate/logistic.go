// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variate

import (
	"math"

	"github.com/fms-lib/go-variate/mathx"
)

// Logistic is the generalized logistic variate with shape parameters
// A, B > 0 and density
//
//	f(x) = e^(-Bx) (1 + e^(-x))^(-(A+B)) / B(A, B)
//
// With u = 1/(1 + e^(-x)) its CDF is the regularized incomplete beta
// function Iᵤ(A, B). The standard logistic, with CDF 1/(1 + e^(-x)),
// has A = B = 1.
//
// The Esscher transform by s is again generalized logistic, with
// shape parameters A+s and B-s, so s must lie in (-A, B).
type Logistic struct {
	a, b float64
}

// StdLogistic is the standard logistic variate.
var StdLogistic = Logistic{a: 1, b: 1}

// NewLogistic returns the generalized logistic variate with shape
// parameters a and b.
func NewLogistic(a, b float64) (Logistic, error) {
	if !(a > 0 && b > 0) {
		return Logistic{}, domainError("logistic shape (%v, %v) must be positive", a, b)
	}
	return Logistic{a: a, b: b}, nil
}

// LogisticWith returns the standard logistic variate with mean mu and
// standard deviation sigma. A sigma of 0 is taken to be 1.
func LogisticWith(mu, sigma float64) Affine {
	if sigma == 0 {
		sigma = 1
	}
	// The standard logistic has variance π²/3.
	return NewAffine(StdLogistic, mu, sigma*math.Sqrt(3)/math.Pi)
}

// A returns the first shape parameter.
func (l Logistic) A() float64 { return l.a }

// B returns the second shape parameter.
func (l Logistic) B() float64 { return l.b }

// tilt returns the shape parameters of the Esscher transform by s.
func (l Logistic) tilt(s float64) (a, b float64, err error) {
	if !(-l.a < s && s < l.b) {
		return nan, nan, domainError("logistic tilt %v outside (%v, %v)", s, -l.a, l.b)
	}
	return l.a + s, l.b - s, nil
}

func (l Logistic) CDF(x, s float64, n int) (float64, error) {
	if err := checkOrder(n); err != nil {
		return nan, err
	}
	a, b, err := l.tilt(s)
	if err != nil {
		return nan, err
	}
	return LogisticCDF(a, b, x, n), nil
}

// Cumulant returns the n'th derivative of
//
//	κ(s) = log Γ(A+s) - log Γ(A) + log Γ(B-s) - log Γ(B)
func (l Logistic) Cumulant(s float64, n int) (float64, error) {
	if err := checkOrder(n); err != nil {
		return nan, err
	}
	a, b, err := l.tilt(s)
	if err != nil {
		return nan, err
	}

	if n == 0 {
		return (mathx.Lgamma(a) - mathx.Lgamma(l.a)) + (mathx.Lgamma(b) - mathx.Lgamma(l.b)), nil
	}
	k := mathx.Polygamma(n-1, b)
	if n%2 == 1 {
		k = -k
	}
	return mathx.Polygamma(n-1, a) + k, nil
}

// EDF returns the derivative of Iᵤ(A+s, B-s) with respect to s,
// which is ∂/∂a Iᵤ - ∂/∂b Iᵤ at the transformed shape parameters.
func (l Logistic) EDF(x, s float64) (float64, error) {
	a, b, err := l.tilt(s)
	if err != nil {
		return nan, err
	}
	da, db := mathx.BetaIncPartials(a, b, logit(x), logit(-x))
	return da - db, nil
}

// logit returns the standard logistic CDF 1/(1 + e^(-x)).
func logit(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// log1pExp returns log(1 + e^x) without overflow.
func log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// LogisticCDF returns the n'th derivative of the CDF of the
// generalized logistic variate with shape parameters a and b at x.
//
// For n ≥ 1 and w = e^(-x)/(1 + e^(-x)) this is
//
//	f(x) Σₖ LogisticCoefficient(a, b, n-1, k) wᵏ
//
// where f is the density.
func LogisticCDF(a, b, x float64, n int) float64 {
	if n < 0 || !(a > 0 && b > 0) {
		return nan
	}
	if n == 0 {
		return mathx.BetaInc(a, b, logit(x))
	}

	// log u and log w, where u = 1/(1 + e^(-x)) and w = 1 - u.
	logu, logw := -log1pExp(-x), -log1pExp(x)
	f := math.Exp(a*logu + b*logw - mathx.Lbeta(a, b))
	if n == 1 {
		return f
	}

	c := logisticCoefficients(a, b, n-1)
	w := math.Exp(logw)
	// Horner's rule on Σ c[k] wᵏ.
	var p float64
	for k := len(c) - 1; k >= 0; k-- {
		p = p*w + c[k]
	}
	return f * p
}

// LogisticCoefficient returns the coefficient A(a, b, n, k) of wᵏ in
// the n+1'th derivative of the generalized logistic CDF. It is
// defined by A(a, b, 0, 0) = 1, A(a, b, n, k) = 0 for k < 0 or k > n,
// and
//
//	A(a, b, n, k) = -(b+k) A(a, b, n-1, k) + (a+b+k-1) A(a, b, n-1, k-1)
func LogisticCoefficient(a, b float64, n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return logisticCoefficients(a, b, n)[k]
}

// logisticCoefficients returns A(a, b, n, k) for k = 0, ..., n.
func logisticCoefficients(a, b float64, n int) []float64 {
	c := make([]float64, n+1)
	c[0] = 1
	for m := 1; m <= n; m++ {
		// Update in place from the top so c[k-1] still holds
		// row m-1.
		for k := m; k >= 0; k-- {
			v := -(b + float64(k)) * c[k]
			if k > 0 {
				v += (a + b + float64(k) - 1) * c[k-1]
			}
			c[k] = v
		}
	}
	return c
}

// BetaPartial returns Iᵤ(a, b) for n = 0, its partial derivative with
// respect to a for n = 1, or with respect to b for n = 2.
//
// At the boundary u = 1, where Iᵤ is identically 1, it instead
// returns the complete beta function B(a, b) for n = 0 and ∂B/∂a for
// n = 1 and 2.
func BetaPartial(a, b, u float64, n int) (float64, error) {
	switch {
	case !(a > 0 && b > 0):
		return nan, domainError("beta shape (%v, %v) must be positive", a, b)
	case !(0 <= u && u <= 1):
		return nan, domainError("beta argument %v outside [0, 1]", u)
	case n < 0 || n > 2:
		return nan, domainError("beta derivative %d not in {0, 1, 2}", n)
	}

	if u == 1 {
		if n == 0 {
			return mathx.Beta(a, b), nil
		}
		return mathx.BetaDA(a, b), nil
	}
	switch n {
	case 0:
		return mathx.BetaInc(a, b, u), nil
	case 1:
		return mathx.BetaIncDA(a, b, u), nil
	}
	return mathx.BetaIncDB(a, b, u), nil
}
