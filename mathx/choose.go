// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// chooseExactLimit is the largest n for which Choose computes with
// exact integer arithmetic. C(60, 30) times 60 still fits in a
// uint64.
const chooseExactLimit = 60

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if n <= chooseExactLimit {
		// Each partial product r is C(n-k+i, i), so the division
		// is always exact.
		r := uint64(1)
		for i := 1; i <= k; i++ {
			r = r * uint64(n-k+i) / uint64(i)
		}
		return float64(r)
	}
	return math.Round(math.Exp(lchoose(n, k)))
}

func lchoose(n, k int) float64 {
	return Lgamma(float64(n+1)) - Lgamma(float64(k+1)) - Lgamma(float64(n-k+1))
}
