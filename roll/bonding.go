// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"math"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// BondingPoint holds the solution of the bonding point problem
type BondingPoint struct {
	Height   float64 // bonding height within the softer layer [m]
	Residual float64 // σref - σsoft at Height [Pa]
	Nbracket int     // number of bracketing steps
	Niter    int     // number of Brent iterations
	Nfeval   int     // number of residual evaluations
}

// BondingHeight finds the height x within the softer layer where its flow stress
// equals the reference stress σref of the harder layer
//
//   σref - σsoft(ln(h0/x)) = 0
//
// The root is bracketed by stepping outwards from cfg.InitialGuess and then refined
// by Brent's method; thus the root nearest to the initial guess is returned.
//  soft -- coefficients of the softer layer
//  dφ   -- equivalent strain rate
//  T    -- absolute temperature
//  h0   -- starting height of the softer layer
//  σref -- initial flow stress of the harder layer
func BondingHeight(soft mflow.Coeffs, dφ, T, h0, σref float64, cfg *Config) (bp BondingPoint, err error) {
	cfg = orDefault(cfg)

	// residual; records the last iterate for diagnostics
	var xlast, flast float64
	var ferr error
	ffcn := func(x float64) float64 {
		bp.Nfeval++
		res, e := mflow.FlowStressFromHeight(x, soft, dφ, T, h0, σref)
		xlast, flast = x, res
		if e != nil {
			ferr = e
			return math.NaN()
		}
		return res
	}

	// bracket
	x0 := cfg.InitialGuess
	xa, xb, fa, fb, nb, err := bracket(ffcn, x0, cfg)
	bp.Nbracket = nb
	if err != nil {
		return
	}
	if cfg.Verbose {
		io.Pfcyan("bonding: bracket [%g, %g] f=[%g, %g] after %d steps\n", xa, xb, fa, fb, nb)
	}
	switch {
	case fa == 0:
		bp.Height, bp.Residual = xa, fa
		return
	case fb == 0:
		bp.Height, bp.Residual = xb, fb
		return
	}

	// refine
	ferr = nil
	brent := num.NewBrent(ffcn, nil)
	brent.MaxIt = cfg.SolverMaxIt
	brent.Tol = cfg.SolverTol
	brent.Verbose = cfg.Verbose
	err = func() (e error) {
		defer func() {
			if r := recover(); r != nil {
				e = divergence("bonding", xlast, flast, chk.Err("%v", r))
			}
		}()
		bp.Height = brent.Root(xa, xb)
		return
	}()
	bp.Niter = brent.NumIter
	if err != nil {
		return
	}
	if ferr != nil {
		return bp, divergence("bonding", xlast, flast, ferr)
	}
	bp.Residual = ffcn(bp.Height)
	if !finite(bp.Height, bp.Residual) || bp.Height <= 0 {
		return bp, divergence("bonding", bp.Height, bp.Residual, chk.Err("non-physical bonding height"))
	}
	if cfg.Verbose {
		io.Pfgreen("bonding: x=%g res=%g niter=%d nfeval=%d\n", bp.Height, bp.Residual, bp.Niter, bp.Nfeval)
	}
	return
}

// bracket steps outwards from x0 until the residual changes sign
//   steps: s_k = BracketStep⋅x0⋅BracketGrowth^k on both sides of x0
// Steps falling on x ≤ 0 are replaced by halving the distance to zero.
// Points where f cannot be evaluated stop the search on that side.
func bracket(f func(x float64) float64, x0 float64, cfg *Config) (xa, xb, fa, fb float64, nsteps int, err error) {

	// initial guess
	if !(x0 > 0) || !finite(x0) {
		return 0, 0, 0, 0, 0, divergence("bonding", x0, math.NaN(), chk.Err("initial guess must be positive"))
	}
	f0 := f(x0)
	if !finite(f0) {
		return 0, 0, 0, 0, 0, divergence("bonding", x0, f0, chk.Err("residual cannot be evaluated at the initial guess"))
	}
	if f0 == 0 {
		return x0, x0, f0, f0, 0, nil
	}

	// step outwards
	lo, flo := x0, f0 // last valid point below x0
	hi, fhi := x0, f0 // last valid point above x0
	loOK, hiOK := true, true
	s := cfg.BracketStep * x0
	for nsteps = 1; nsteps <= cfg.BracketMaxIt; nsteps++ {

		// upwards
		if hiOK {
			x := x0 + s
			fx := f(x)
			if finite(fx) {
				if fx*fhi <= 0 {
					return hi, x, fhi, fx, nsteps, nil
				}
				hi, fhi = x, fx
			} else {
				hiOK = false
			}
		}

		// downwards
		if loOK {
			x := x0 - s
			if x <= 0 {
				x = lo / 2
			}
			fx := f(x)
			if finite(fx) {
				if fx*flo <= 0 {
					return x, lo, fx, flo, nsteps, nil
				}
				lo, flo = x, fx
			} else {
				loOK = false
			}
		}

		if !loOK && !hiOK {
			break
		}
		s *= cfg.BracketGrowth
	}

	// report the point with the smallest residual
	x, fx := lo, flo
	if math.Abs(fhi) < math.Abs(flo) {
		x, fx = hi, fhi
	}
	return 0, 0, 0, 0, nsteps, divergence("bonding", x, fx,
		chk.Err("cannot bracket a root around x0=%g; searched [%g, %g]", x0, lo, hi))
}
