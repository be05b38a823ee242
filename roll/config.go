// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import "github.com/cpmech/gosl/chk"

// MaxFid is the number of QUADPACK function slots. Integrations sharing a slot run one
// at a time; goroutines using distinct slots integrate in parallel
const MaxFid = 64

// Config holds the numerical settings of the clad-layer solver
type Config struct {

	// model
	InitialGuess float64 `json:"initialguess" yaml:"initialguess"` // initial guess of the bonding height [m]
	Weight       float64 `json:"weight" yaml:"weight"`             // weight of end-state (analytical) against initial (geometrical) flow stresses

	// bonding point solver
	SolverTol     float64 `json:"solvertol" yaml:"solvertol"`         // absolute tolerance on the bonding height [m]
	SolverMaxIt   int     `json:"solvermaxit" yaml:"solvermaxit"`     // max number of Brent iterations
	BracketStep   float64 `json:"bracketstep" yaml:"bracketstep"`     // first bracketing step as a fraction of InitialGuess
	BracketGrowth float64 `json:"bracketgrowth" yaml:"bracketgrowth"` // growth factor of bracketing steps
	BracketMaxIt  int     `json:"bracketmaxit" yaml:"bracketmaxit"`   // max number of bracketing steps

	// quadrature
	QuadAtol  float64 `json:"quadatol" yaml:"quadatol"`   // absolute tolerance
	QuadRtol  float64 `json:"quadrtol" yaml:"quadrtol"`   // relative tolerance
	QuadLimit int     `json:"quadlimit" yaml:"quadlimit"` // max number of subintervals
	Fid       int     `json:"fid" yaml:"fid"`             // QUADPACK function slot; calls sharing a slot are serialised

	// limits
	FrictionEps float64 `json:"frictioneps" yaml:"frictioneps"` // a_f below this value is treated as frictionless

	// messages
	Verbose bool `json:"verbose" yaml:"verbose"` // trace iterations and intermediate results
}

// NewConfig returns a configuration with default values
func NewConfig() *Config {
	var o Config
	o.SetDefault()
	return &o
}

// SetDefault sets defaults values
func (o *Config) SetDefault() {

	// model
	o.InitialGuess = 0.0019
	o.Weight = 2

	// bonding point solver
	o.SolverTol = 1e-12
	o.SolverMaxIt = 100
	o.BracketStep = 0.05
	o.BracketGrowth = 1.6
	o.BracketMaxIt = 60

	// quadrature
	o.QuadAtol = 1.49e-8
	o.QuadRtol = 1.49e-8
	o.QuadLimit = 50
	o.Fid = 0

	// limits
	o.FrictionEps = 1e-12
}

// PostProcess checks the configuration after the user has changed values
func (o *Config) PostProcess() error {
	switch {
	case o.SolverTol <= 0:
		return o.invalid("SolverTol=%g must be positive", o.SolverTol)
	case o.SolverMaxIt < 1:
		return o.invalid("SolverMaxIt=%d must be at least 1", o.SolverMaxIt)
	case o.BracketStep <= 0:
		return o.invalid("BracketStep=%g must be positive", o.BracketStep)
	case o.BracketGrowth <= 1:
		return o.invalid("BracketGrowth=%g must be greater than 1", o.BracketGrowth)
	case o.BracketMaxIt < 1:
		return o.invalid("BracketMaxIt=%d must be at least 1", o.BracketMaxIt)
	case o.QuadAtol <= 0 || o.QuadRtol <= 0:
		return o.invalid("quadrature tolerances must be positive. atol=%g, rtol=%g", o.QuadAtol, o.QuadRtol)
	case o.QuadLimit < 1:
		return o.invalid("QuadLimit=%d must be at least 1", o.QuadLimit)
	case o.Fid < 0 || o.Fid >= MaxFid:
		return o.invalid("Fid=%d must be in [0, %d)", o.Fid, MaxFid)
	case o.FrictionEps < 0:
		return o.invalid("FrictionEps=%g must not be negative", o.FrictionEps)
	case !(o.Weight > -1):
		return o.invalid("Weight=%g must be greater than -1", o.Weight)
	}
	return nil
}

func (o *Config) invalid(msg string, prm ...interface{}) error {
	return &Error{Op: "config", Kind: KindInvalidConfig, Err: chk.Err(msg, prm...)}
}

// orDefault returns cfg or a default configuration if cfg is nil
func orDefault(cfg *Config) *Config {
	if cfg == nil {
		return NewConfig()
	}
	return cfg
}
