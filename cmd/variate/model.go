// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/fms-lib/go-variate/mathx"
	"github.com/fms-lib/go-variate/variate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// modelConfig describes a model, as read from flags or a YAML file
// such as
//
//	model: logistic
//	a: 2
//	b: 0.5
//	mu: 1
//	sigma: 3
type modelConfig struct {
	Model string  `yaml:"model"`
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`

	// Logistic shape parameters. If both are 0, the model is the
	// standard logistic rescaled to mean Mu and standard deviation
	// Sigma.
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`

	// Constant value.
	C float64 `yaml:"c"`

	// Discrete values and weights.
	X []float64 `yaml:"x"`
	P []float64 `yaml:"p"`

	// Binomial parameters.
	Trials int     `yaml:"trials"`
	Prob   float64 `yaml:"prob"`

	Policy policyConfig `yaml:"policy"`
}

// policyConfig is the YAML form of mathx.ConvergencePolicy.
type policyConfig struct {
	Eps   float64 `yaml:"eps"`
	Skip  int     `yaml:"skip"`
	Terms int     `yaml:"terms"`
}

func (p policyConfig) policy() mathx.ConvergencePolicy {
	return mathx.ConvergencePolicy{Eps: p.Eps, Skip: p.Skip, Terms: p.Terms}
}

var modelFlags = []string{"model", "mu", "sigma", "a", "b", "c", "x", "p", "trials", "prob"}

// addModelFlags registers the model flags on cmd.
func (a *app) addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&a.model.Model, "model", "normal", "model: normal, logistic, constant, discrete or binomial")
	f.Float64Var(&a.model.Mu, "mu", 0, "location")
	f.Float64Var(&a.model.Sigma, "sigma", 1, "scale (0 means 1)")
	f.Float64Var(&a.model.A, "a", 0, "logistic first shape parameter")
	f.Float64Var(&a.model.B, "b", 0, "logistic second shape parameter")
	f.Float64Var(&a.model.C, "c", 0, "constant value")
	f.Float64SliceVar(&a.model.X, "x", nil, "discrete values")
	f.Float64SliceVar(&a.model.P, "p", nil, "discrete weights")
	f.IntVar(&a.model.Trials, "trials", 0, "binomial trial count")
	f.Float64Var(&a.model.Prob, "prob", 0.5, "binomial success probability")
}

// readConfig returns the configuration from --config, or the defaults
// if there is none.
func (a *app) readConfig() (modelConfig, error) {
	cfg := modelConfig{Model: "normal", Sigma: 1, Prob: 0.5}
	if a.configPath == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(a.configPath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", a.configPath, err)
	}
	a.log.Debug("loaded config", "path", a.configPath, "model", cfg.Model)
	return cfg, nil
}

// loadConfig returns the configuration from --config with the model
// flags set on cmd applied over it.
func (a *app) loadConfig(cmd *cobra.Command) (modelConfig, error) {
	cfg, err := a.readConfig()
	if err != nil {
		return cfg, err
	}

	set := cmd.Flags().Changed
	for _, name := range modelFlags {
		if !set(name) {
			continue
		}
		switch name {
		case "model":
			cfg.Model = a.model.Model
		case "mu":
			cfg.Mu = a.model.Mu
		case "sigma":
			cfg.Sigma = a.model.Sigma
		case "a":
			cfg.A = a.model.A
		case "b":
			cfg.B = a.model.B
		case "c":
			cfg.C = a.model.C
		case "x":
			cfg.X = a.model.X
		case "p":
			cfg.P = a.model.P
		case "trials":
			cfg.Trials = a.model.Trials
		case "prob":
			cfg.Prob = a.model.Prob
		}
	}
	return cfg, nil
}

// build returns the variate described by cfg.
func (cfg modelConfig) build() (variate.Variate, error) {
	var base variate.Variate
	switch cfg.Model {
	case "normal":
		return variate.NormalWith(cfg.Mu, cfg.Sigma), nil
	case "logistic":
		if cfg.A == 0 && cfg.B == 0 {
			return variate.LogisticWith(cfg.Mu, cfg.Sigma), nil
		}
		l, err := variate.NewLogistic(cfg.A, cfg.B)
		if err != nil {
			return nil, err
		}
		base = l
	case "constant":
		base = variate.Constant{C: cfg.C}
	case "discrete":
		d, err := variate.NewDiscrete(cfg.X, cfg.P)
		if err != nil {
			return nil, err
		}
		base = d
	case "binomial":
		d, err := variate.Binomial(cfg.Trials, cfg.Prob)
		if err != nil {
			return nil, err
		}
		base = d
	default:
		return nil, fmt.Errorf("unknown model %q", cfg.Model)
	}

	if cfg.Mu == 0 && (cfg.Sigma == 0 || cfg.Sigma == 1) {
		return base, nil
	}
	return variate.NewAffine(base, cfg.Mu, cfg.Sigma), nil
}

// buildModel loads the configuration for cmd and builds its model.
func (a *app) buildModel(cmd *cobra.Command) (variate.Variate, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	v, err := cfg.build()
	if err != nil {
		return nil, err
	}
	a.log.Debug("built model", "model", cfg.Model, "type", fmt.Sprintf("%T", v))
	return v, nil
}
