// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fms-lib/go-variate/variate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command line args with the given stdin and returns
// what was written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(&errOut)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// floatLines parses one number per line.
func floatLines(t *testing.T, s string) []float64 {
	t.Helper()
	var xs []float64
	for _, l := range strings.Split(strings.TrimSpace(s), "\n") {
		x, err := strconv.ParseFloat(l, 64)
		require.NoError(t, err, "line %q", l)
		xs = append(xs, x)
	}
	return xs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCDF(t *testing.T) {
	out, _, err := execute(t, "", "cdf", "0")
	require.NoError(t, err)
	assert.Equal(t, "0.5\n", out)

	out, _, err = execute(t, "", "cdf", "--model", "normal", "--mu", "1", "--sigma", "2", "1", "3")
	require.NoError(t, err)
	got := floatLines(t, out)
	require.Len(t, got, 2)
	assert.Equal(t, 0.5, got[0])
	assert.InDelta(t, 0.8413447460685429, got[1], 1e-12)

	out, _, err = execute(t, "", "cdf", "-n", "1", "-s", "0.5", "0.5")
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), floatLines(t, out)[0], 1e-15)
}

func TestStdin(t *testing.T) {
	out, _, err := execute(t, "0\n\n  0\n", "cdf")
	require.NoError(t, err)
	assert.Equal(t, "0.5\n0.5\n", out)

	_, _, err = execute(t, "0\nabc\n", "cdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = execute(t, "", "cdf", "abc")
	require.Error(t, err)
}

func TestLogistic(t *testing.T) {
	out, _, err := execute(t, "", "cumulant", "-n", "2", "--model", "logistic", "--a", "1", "--b", "1", "0")
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*math.Pi/3, floatLines(t, out)[0], 1e-12)

	out, _, err = execute(t, "", "stats", "--model", "logistic", "--mu", "2", "--sigma", "3")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	assert.Equal(t, []string{"mean", "2"}, fields[:2])
	v, err := strconv.ParseFloat(fields[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 9, v, 1e-12)

	_, _, err = execute(t, "", "cdf", "--model", "logistic", "--a", "1", "--b", "1", "-s", "2", "0")
	assert.ErrorIs(t, err, variate.ErrDomain)

	_, _, err = execute(t, "", "cdf", "--model", "logistic", "--a", "-1", "--b", "1", "0")
	assert.ErrorIs(t, err, variate.ErrDomain)
}

func TestConstant(t *testing.T) {
	out, _, err := execute(t, "", "stats", "--model", "constant", "--c", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "mean 2.5\nvariance 0\n", out)

	out, _, err = execute(t, "", "pdf", "--model", "constant", "--c", "1.23", "1.22", "1.23")
	require.NoError(t, err)
	assert.Equal(t, "0\n+Inf\n", out)

	_, _, err = execute(t, "", "cdf", "-n", "2", "--model", "constant", "--c", "1", "1")
	assert.ErrorIs(t, err, variate.ErrDomain)
}

func TestDiscrete(t *testing.T) {
	out, _, err := execute(t, "", "cdf", "--model", "discrete", "--x", "0,1", "--p", "1,3", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n1\n", out)

	_, _, err = execute(t, "", "cdf", "--model", "discrete", "--x", "0,1", "--p", "1", "0")
	assert.ErrorIs(t, err, variate.ErrDomain)
}

func TestEDF(t *testing.T) {
	out, _, err := execute(t, "", "edf", "0")
	require.NoError(t, err)
	assert.InDelta(t, -1/math.Sqrt(2*math.Pi), floatLines(t, out)[0], 1e-15)
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, "model: binomial\ntrials: 4\nprob: 0.5\n")

	out, _, err := execute(t, "", "stats", "--config", path)
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	mean, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	variance, err := strconv.ParseFloat(fields[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2, mean, 1e-12)
	assert.InDelta(t, 1, variance, 1e-12)

	// Flags override the file.
	out, _, err = execute(t, "", "stats", "--config", path, "--prob", "0.25")
	require.NoError(t, err)
	fields = strings.Fields(out)
	require.Len(t, fields, 4)
	mean, err = strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	variance, err = strconv.ParseFloat(fields[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1, mean, 1e-12)
	assert.InDelta(t, 0.75, variance, 1e-12)

	_, _, err = execute(t, "", "stats", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := writeConfig(t, "model: [\n")
	_, _, err = execute(t, "", "stats", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestUnknownModel(t *testing.T) {
	_, _, err := execute(t, "", "cdf", "--model", "cauchy", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown model "cauchy"`)
}

func TestBeta(t *testing.T) {
	out, _, err := execute(t, "", "beta", "--a", "2", "--b", "3", "1", "0.5")
	require.NoError(t, err)
	got := floatLines(t, out)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0/12, got[0], 1e-14)
	assert.InDelta(t, 11.0/16, got[1], 1e-14)

	// ∂/∂a Iᵤ(a, 1) = uᵃ log u
	out, _, err = execute(t, "", "beta", "--a", "2", "--b", "1", "-n", "1", "0.25")
	require.NoError(t, err)
	assert.InDelta(t, 0.0625*math.Log(0.25), floatLines(t, out)[0], 1e-12)

	_, _, err = execute(t, "", "beta", "--a", "2", "--b", "3", "-n", "3", "0.5")
	assert.ErrorIs(t, err, variate.ErrDomain)
	_, _, err = execute(t, "", "beta", "--a", "2", "--b", "3", "1.5")
	assert.ErrorIs(t, err, variate.ErrDomain)
}

func TestPFQ(t *testing.T) {
	out, _, err := execute(t, "", "pfq", "1")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	sum, err := strconv.ParseFloat(fields[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, math.E, sum, 1e-12)
	assert.Equal(t, "40", fields[3])

	// A non-positive integer numerator parameter terminates the
	// series: ₁F₀(-2;;1) = (1-1)² = 0.
	out, _, err = execute(t, "", "pfq", "--a=-2", "1")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 3\n", out)

	out, _, err = execute(t, "", "pfq", "--b", "3", "--regularized", "0")
	require.NoError(t, err)
	sum, err = strconv.ParseFloat(strings.Fields(out)[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sum, 1e-15)

	out, _, err = execute(t, "", "pfq", "--skip", "1", "--eps", "1e-16", "--terms", "100", "1")
	require.NoError(t, err)
	fields = strings.Fields(out)
	require.Len(t, fields, 4)
	assert.Equal(t, "1", fields[2])
}

func TestPFQPolicyFromConfig(t *testing.T) {
	path := writeConfig(t, "policy:\n  terms: 5\n")
	out, _, err := execute(t, "", "pfq", "--config", path, "1")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	assert.Equal(t, "5", fields[3])
	sum, err := strconv.ParseFloat(fields[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1+1+0.5+1.0/6+1.0/24, sum, 1e-15)

	// --terms overrides the file.
	out, _, err = execute(t, "", "pfq", "--config", path, "--terms", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "2", strings.Fields(out)[3])
}

func TestVerbose(t *testing.T) {
	_, stderr, err := execute(t, "", "cdf", "0")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = execute(t, "", "--verbose", "cdf", "0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "built model")
	assert.Contains(t, stderr, "model=normal")
}

func TestRun(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"cdf", "0"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "0.5\n", out.String())

	out.Reset()
	code = run([]string{"cdf", "--model", "cauchy", "0"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "variate failed")
}
