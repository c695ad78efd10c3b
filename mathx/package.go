// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special mathematical functions not
// implemented by the Go standard library, along with a generic
// evaluator for the generalized hypergeometric series pFq.
//
// Functions in this package do not return errors. Arguments outside
// a function's domain produce NaN, which propagates to the caller.
package mathx // import "github.com/fms-lib/go-variate/mathx"

import "math"

var nan = math.NaN()

// sqrtEpsilon is the square root of the float64 machine epsilon.
const sqrtEpsilon = 1.0 / (1 << 26)

// epsilon is the float64 machine epsilon.
const epsilon = 1.0 / (1 << 52)
