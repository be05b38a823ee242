// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num/qpck"
)

// Geometry holds the dimensionless data of the FEB model at the neutral point
type Geometry struct {
	Af         float64 // friction/geometry factor a = μ⋅√(R/h1)
	R          float64 // reduction r = (h0-h1)/h0
	PhiEntry   float64 // Φe: angle at entry divided by the friction coefficient
	PhiNeutral float64 // Φn: angle at the neutral point divided by the friction coefficient
}

// Factors holds the dimensionless correction factors of the FEB model
type Factors struct {
	F1           float64 // force factor
	F2           float64 // torque factor
	Frictionless bool    // limiting values for vanishing friction were returned
}

// Admissible tells whether the neutral point lies within the contact zone (0 ≤ Φn ≤ Φe).
// Very small friction factors make Φn swing around and the FEB factors lose their meaning
func (g Geometry) Admissible() bool {
	return g.PhiNeutral >= 0 && g.PhiNeutral <= g.PhiEntry
}

// FrictionFactor computes a = μ⋅√(R/h1)
func FrictionFactor(μ, R, h1 float64) float64 {
	return μ * math.Sqrt(R/h1)
}

// PhiEntry computes Φe = (1/a)⋅√(r/(1-r))
func PhiEntry(a, r float64) float64 {
	return math.Sqrt(r/(1-r)) / a
}

// PhiNeutral computes Φn = (1/a)⋅tan(½⋅atan(√(r/(1-r))) - ln(1/(1-r))/(4a))
func PhiNeutral(a, r float64) float64 {
	return math.Tan(0.5*math.Atan(math.Sqrt(r/(1-r)))-math.Log(1/(1-r))/(4*a)) / a
}

// NeutralPoint computes the FEB geometry
//  μ  -- friction coefficient
//  R  -- roll radius
//  h1 -- height at exit
//  r  -- reduction
func NeutralPoint(μ, R, h1, r float64) (g Geometry, err error) {
	if R <= 0 || h1 <= 0 {
		return g, &Error{Op: "feb", Kind: KindInvalidGeometry,
			Err: chk.Err("radius and exit height must be positive. R=%g, h1=%g", R, h1)}
	}
	if !(r > 0 && r < 1) {
		return g, &Error{Op: "feb", Kind: KindInvalidGeometry,
			Err: chk.Err("reduction must be in (0, 1). r=%g", r)}
	}
	if μ < 0 {
		return g, &Error{Op: "feb", Kind: KindInvalidGeometry,
			Err: chk.Err("friction coefficient must not be negative. μ=%g", μ)}
	}
	g.Af = FrictionFactor(μ, R, h1)
	g.R = r
	if g.Af > 0 {
		g.PhiEntry = PhiEntry(g.Af, r)
		g.PhiNeutral = PhiNeutral(g.Af, r)
	}
	return
}

// forceIntegrand computes (1 + a²x²)⋅exp(±2a⋅atan(a⋅x))
//  sign -- +1 between exit and neutral point; -1 between neutral point and entry
func forceIntegrand(x, a, sign float64) float64 {
	return (1 + a*a*x*x) * math.Exp(sign*2*a*math.Atan(a*x))
}

// torqueIntegrand computes x⋅(1 + a²x²)⋅exp(±2a⋅atan(a⋅x))
func torqueIntegrand(x, a, sign float64) float64 {
	return x * forceIntegrand(x, a, sign)
}

// FEBFactors computes the force and torque correction factors
//
//                   ⎛ Φn                          Φe          ⎞
//   F1 = a⋅√((1-r)/r) ⎜ ∫ g⁺ dx + (1-r)⋅exp(2a⋅atan(√(r/(1-r)))) ∫ g⁻ dx ⎟
//                   ⎝ 0                           Φn          ⎠
//
//   F2 = a²(1-r)² ( same with x⋅g± )
//
// with g± = (1 + a²x²)⋅exp(±2a⋅atan(a⋅x))
func FEBFactors(μ, R, h1, r float64, cfg *Config) (f Factors, err error) {
	cfg = orDefault(cfg)
	g, err := NeutralPoint(μ, R, h1, r)
	if err != nil {
		return
	}
	return factors(g, cfg)
}

// factors computes the FEB factors for given geometry
func factors(g Geometry, cfg *Config) (f Factors, err error) {

	// frictionless limit
	if g.Af == 0 || g.Af < cfg.FrictionEps {
		if cfg.Verbose {
			io.Pfyel("feb: a=%g is below %g. using frictionless factors\n", g.Af, cfg.FrictionEps)
		}
		return Factors{F1: 1, F2: 1, Frictionless: true}, nil
	}

	// coupling at the neutral point
	a, r := g.Af, g.R
	c := (1 - r) * math.Exp(2*a*math.Atan(math.Sqrt(r/(1-r))))

	// force
	i1, err := splitIntegral(forceIntegrand, g, c, cfg)
	if err != nil {
		return f, newError("feb.force", KindIntegrationFailure, "", err)
	}
	f.F1 = a * math.Sqrt((1-r)/r) * i1

	// torque
	i2, err := splitIntegral(torqueIntegrand, g, c, cfg)
	if err != nil {
		return f, newError("feb.torque", KindIntegrationFailure, "", err)
	}
	f.F2 = a * a * (1 - r) * (1 - r) * i2

	if cfg.Verbose {
		if !g.Admissible() {
			io.Pfyel("feb: neutral point Φn=%g is outside [0, Φe=%g]\n", g.PhiNeutral, g.PhiEntry)
		}
		io.Pforan("feb: a=%g r=%g Φe=%g Φn=%g F1=%g F2=%g\n", a, r, g.PhiEntry, g.PhiNeutral, f.F1, f.F2)
	}
	if !finite(f.F1, f.F2) {
		return f, &Error{Op: "feb", Kind: KindIntegrationFailure,
			Err: chk.Err("factors are not finite. F1=%g, F2=%g", f.F1, f.F2)}
	}
	return
}

// splitIntegral computes ∫₀^Φn h(x,a,+1) dx + c⋅∫_Φn^Φe h(x,a,-1) dx
func splitIntegral(h func(x, a, sign float64) float64, g Geometry, c float64, cfg *Config) (res float64, err error) {
	a := g.Af
	lo, err := quad(func(x float64) float64 { return h(x, a, +1) }, 0, g.PhiNeutral, cfg)
	if err != nil {
		return
	}
	hi, err := quad(func(x float64) float64 { return h(x, a, -1) }, g.PhiNeutral, g.PhiEntry, cfg)
	if err != nil {
		return
	}
	return lo + c*hi, nil
}

// fidMu guards the QUADPACK function slots; qpck.Agse keeps the integrand in a global table
var fidMu [MaxFid]sync.Mutex

// quad integrates f over [xa, xb] using QUADPACK's globally adaptive routine
func quad(f func(x float64) float64, xa, xb float64, cfg *Config) (res float64, err error) {

	// catch non-finite integrand values
	var bad float64
	nonfinite := false
	y := func(x float64) float64 {
		v := f(x)
		if !finite(v) {
			if !nonfinite {
				bad = x
			}
			nonfinite = true
			return 0
		}
		return v
	}

	// function slot
	fid := cfg.Fid
	if fid < 0 || fid >= MaxFid {
		return 0, cfg.invalid("Fid=%d must be in [0, %d)", fid, MaxFid)
	}

	// QUADPACK panics on failure
	defer func() {
		if e := recover(); e != nil {
			err = &Error{Op: "quad", Kind: KindIntegrationFailure,
				Err: chk.Err("QUADPACK failed on [%g, %g]: %v", xa, xb, e)}
		}
	}()

	// workspace
	n := cfg.QuadLimit
	alist := make([]float64, n)
	blist := make([]float64, n)
	rlist := make([]float64, n)
	elist := make([]float64, n)
	iord := make([]int32, n)

	// integrate
	fidMu[fid].Lock()
	defer fidMu[fid].Unlock()
	res, abserr, neval, last := qpck.Agse(int32(fid), y, xa, xb, cfg.QuadAtol, cfg.QuadRtol, alist, blist, rlist, elist, iord)
	if cfg.Verbose {
		io.Pf("quad: [%g, %g] res=%g abserr=%g neval=%d last=%d\n", xa, xb, res, abserr, neval, last)
	}
	if nonfinite {
		return 0, &Error{Op: "quad", Kind: KindIntegrationFailure,
			Err: chk.Err("integrand is not finite at x=%g", bad)}
	}
	if !finite(res) {
		return 0, &Error{Op: "quad", Kind: KindIntegrationFailure,
			Err: chk.Err("integral over [%g, %g] is not finite", xa, xb)}
	}
	return
}
