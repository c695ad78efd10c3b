// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variate implements random variates together with the
// derivatives of their Esscher-transformed distribution functions.
//
// The cumulant of a random variable X is κ(s) = log E[exp(sX)]. Its
// Esscher transform X_s by s has cumulative distribution function
//
//	F_s(x) = E[1(X ≤ x) exp(sX - κ(s))]
//
// A Variate reports the derivatives of F_s with respect to x, the
// derivatives of κ, and the derivative of F_s with respect to s.
package variate // import "github.com/fms-lib/go-variate/variate"

import (
	"errors"
	"fmt"
	"math"
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

// ErrDomain is returned when an argument or shape parameter is
// outside the domain of a variate.
var ErrDomain = errors.New("argument out of domain")

func domainError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDomain}, args...)...)
}

// A Variate is a real random variable described by its Esscher
// transforms.
//
// Implementations in this package are immutable values and are safe
// for concurrent use.
type Variate interface {
	// CDF returns the n'th derivative with respect to x of the
	// cumulative distribution function F_s(x) of the Esscher
	// transform by s. For n = 0 this is F_s(x) and for n = 1 it is
	// the transformed density.
	CDF(x, s float64, n int) (float64, error)

	// Cumulant returns the n'th derivative of the cumulant
	// κ(s) = log E[exp(sX)]. Cumulant(0, 0) is always 0.
	Cumulant(s float64, n int) (float64, error)

	// EDF returns the derivative of F_s(x) with respect to s,
	//
	//	E[1(X ≤ x) exp(sX - κ(s)) (X - κ'(s))]
	EDF(x, s float64) (float64, error)
}

// PDF returns the density of the Esscher transform of v by s at x.
func PDF(v Variate, x, s float64) (float64, error) {
	return v.CDF(x, s, 1)
}

// Mean returns the mean of v, κ'(0).
func Mean(v Variate) (float64, error) {
	return v.Cumulant(0, 1)
}

// Variance returns the variance of v, κ''(0).
func Variance(v Variate) (float64, error) {
	return v.Cumulant(0, 2)
}

func checkOrder(n int) error {
	if n < 0 {
		return domainError("derivative order %d < 0", n)
	}
	return nil
}
