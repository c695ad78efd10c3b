// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fms-lib/go-variate/mathx"
	"github.com/fms-lib/go-variate/variate"
	"github.com/spf13/cobra"
)

// modelCmd returns a command that evaluates f at each input value
// against the configured model.
func (a *app) modelCmd(use, short string, f func(v variate.Variate, x float64) (float64, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.buildModel(cmd)
			if err != nil {
				return err
			}
			xs, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, x := range xs {
				y, err := f(v, x)
				if err != nil {
					return fmt.Errorf("%s %v: %w", cmd.Name(), x, err)
				}
				a.log.Debug(cmd.Name(), "in", x, "out", y)
				printValue(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}
	a.addModelFlags(cmd)
	return cmd
}

func (a *app) cdfCmd() *cobra.Command {
	var s float64
	var n int
	cmd := a.modelCmd("cdf [x...]", "Print the n'th derivative of the transformed CDF",
		func(v variate.Variate, x float64) (float64, error) {
			return v.CDF(x, s, n)
		})
	cmd.Flags().Float64VarP(&s, "tilt", "s", 0, "Esscher tilt")
	cmd.Flags().IntVarP(&n, "order", "n", 0, "derivative order")
	return cmd
}

func (a *app) pdfCmd() *cobra.Command {
	var s float64
	cmd := a.modelCmd("pdf [x...]", "Print the transformed density",
		func(v variate.Variate, x float64) (float64, error) {
			return variate.PDF(v, x, s)
		})
	cmd.Flags().Float64VarP(&s, "tilt", "s", 0, "Esscher tilt")
	return cmd
}

func (a *app) cumulantCmd() *cobra.Command {
	var n int
	cmd := a.modelCmd("cumulant [s...]", "Print the n'th derivative of the cumulant",
		func(v variate.Variate, s float64) (float64, error) {
			return v.Cumulant(s, n)
		})
	cmd.Flags().IntVarP(&n, "order", "n", 0, "derivative order")
	return cmd
}

func (a *app) edfCmd() *cobra.Command {
	var s float64
	cmd := a.modelCmd("edf [x...]", "Print the tilt derivative of the transformed CDF",
		func(v variate.Variate, x float64) (float64, error) {
			return v.EDF(x, s)
		})
	cmd.Flags().Float64VarP(&s, "tilt", "s", 0, "Esscher tilt")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the mean and variance of the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.buildModel(cmd)
			if err != nil {
				return err
			}
			mean, err := variate.Mean(v)
			if err != nil {
				return err
			}
			variance, err := variate.Variance(v)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mean %.17g\n", mean)
			fmt.Fprintf(w, "variance %.17g\n", variance)
			return nil
		},
	}
	a.addModelFlags(cmd)
	return cmd
}

func (a *app) betaCmd() *cobra.Command {
	var shapeA, shapeB float64
	var n int
	cmd := &cobra.Command{
		Use:   "beta [u...]",
		Short: "Print the regularized incomplete beta function or its shape derivatives",
		Long: `Beta prints Iᵤ(a, b) for -n 0, its derivative with respect to a
for -n 1, or with respect to b for -n 2. At u = 1 it prints the complete
beta function B(a, b) for -n 0 and ∂B/∂a otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, u := range us {
				y, err := variate.BetaPartial(shapeA, shapeB, u, n)
				if err != nil {
					return fmt.Errorf("beta %v: %w", u, err)
				}
				a.log.Debug("beta", "a", shapeA, "b", shapeB, "u", u, "n", n, "out", y)
				printValue(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&shapeA, "a", 1, "first shape parameter")
	cmd.Flags().Float64Var(&shapeB, "b", 1, "second shape parameter")
	cmd.Flags().IntVarP(&n, "order", "n", 0, "0 for the value, 1 for ∂/∂a, 2 for ∂/∂b")
	return cmd
}

func (a *app) pfqCmd() *cobra.Command {
	var (
		as, bs      []float64
		regularized bool
		flags       policyConfig
	)
	cmd := &cobra.Command{
		Use:   "pfq [x...]",
		Short: "Sum the generalized hypergeometric series pFq(a; b; x)",
		Long: `Pfq sums the generalized hypergeometric series and prints, for each x,
the sum, the last term added, the number of small terms and the number of
terms summed. The convergence policy comes from --eps, --skip and --terms,
or from the policy block of the --config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.readConfig()
			if err != nil {
				return err
			}
			p := cfg.Policy
			if cmd.Flags().Changed("eps") {
				p.Eps = flags.Eps
			}
			if cmd.Flags().Changed("skip") {
				p.Skip = flags.Skip
			}
			if cmd.Flags().Changed("terms") {
				p.Terms = flags.Terms
			}
			policy := p.policy()

			xs, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, x := range xs {
				series := mathx.NewHypergeometricSeries(as, bs)
				res := series.Value(x, policy)
				sum := res.Sum
				if regularized {
					sum = series.Regularized()
				}
				a.log.Debug("pfq", "a", as, "b", bs, "x", x,
					"last", res.Last, "small", res.Small, "iterations", res.Iterations)
				fmt.Fprintf(cmd.OutOrStdout(), "%.17g %.17g %d %d\n", sum, res.Last, res.Small, res.Iterations)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&as, "a", nil, "numerator parameters")
	f.Float64SliceVar(&bs, "b", nil, "denominator parameters")
	f.BoolVar(&regularized, "regularized", false, "divide by the product of Γ(bⱼ)")
	f.Float64Var(&flags.Eps, "eps", mathx.DefaultConvergencePolicy.Eps, "relative tolerance")
	f.IntVar(&flags.Skip, "skip", mathx.DefaultConvergencePolicy.Skip, "consecutive small terms before stopping")
	f.IntVar(&flags.Terms, "terms", mathx.DefaultConvergencePolicy.Terms, "maximum number of terms")
	return cmd
}
