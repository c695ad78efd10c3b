// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readValues parses args as numbers, or, if there are no args, reads
// newline-separated numbers from r. Blank lines are skipped.
func readValues(args []string, r io.Reader) ([]float64, error) {
	var xs []float64
	if len(args) > 0 {
		for _, arg := range args {
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, err
			}
			xs = append(xs, x)
		}
		return xs, nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		x, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, x)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

// printValue writes v on its own line with enough digits to round-trip.
func printValue(w io.Writer, v float64) {
	fmt.Fprintf(w, "%.17g\n", v)
}
