// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"math"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// layer names
const (
	Upper = "upper"
	Lower = "lower"
)

// Pass holds the process data of one rolling pass (SI units)
type Pass struct {
	Radius      float64 // roll radius [m]
	Friction    float64 // friction coefficient [-]
	RollGap     float64 // final combined height [m]
	Velocity    float64 // roll surface velocity [m/s]
	Temperature float64 // absolute temperature [K]
	Width       float64 // workpiece width [m]
	Upper       float64 // initial thickness of the upper layer [m]
	Lower       float64 // initial thickness of the lower layer [m]
}

// Check checks the process data
func (o Pass) Check() error {
	switch {
	case !(o.Radius > 0):
		return o.invalid("roll radius must be positive. R=%g", o.Radius)
	case !(o.Width > 0):
		return o.invalid("width must be positive. b=%g", o.Width)
	case !(o.Upper > 0) || !(o.Lower > 0):
		return o.invalid("layer thicknesses must be positive. upper=%g, lower=%g", o.Upper, o.Lower)
	case !(o.RollGap > 0):
		return o.invalid("roll gap must be positive. h1=%g", o.RollGap)
	case !(o.RollGap < o.Upper+o.Lower):
		return o.invalid("roll gap h1=%g must be smaller than the initial thickness h0=%g", o.RollGap, o.Upper+o.Lower)
	case !(o.Friction >= 0):
		return o.invalid("friction coefficient must not be negative. μ=%g", o.Friction)
	case !(o.Velocity > 0):
		return o.invalid("roll velocity must be positive. v=%g", o.Velocity)
	case !(o.Temperature > 0):
		return o.invalid("absolute temperature must be positive. T=%g", o.Temperature)
	}
	return nil
}

func (o Pass) invalid(msg string, prm ...interface{}) error {
	return &Error{Op: "pass", Kind: KindInvalidGeometry, Err: chk.Err(msg, prm...)}
}

// Details holds intermediate results of the clad-layer model
type Details struct {

	// kinematics
	ContactLength float64 // projected contact length [m]
	Strain        float64 // overall logarithmic strain
	StrainRate    float64 // equivalent strain rate [1/s]

	// layers
	Harder     string       // name of the harder layer (Upper or Lower)
	Bonding    BondingPoint // bonding point solution (softer layer)
	Beta       float64      // relative end height of the softer layer
	EndSoft    float64      // end height of the softer layer [m]
	EndHard    float64      // end height of the harder layer [m]
	StrainSoft float64      // end strain of the softer layer
	StrainHard float64      // end strain of the harder layer
	SigSoftIni float64      // initial flow stress of the softer layer [Pa]
	SigHardIni float64      // initial flow stress of the harder layer [Pa]
	SigSoftEnd float64      // end flow stress of the softer layer [Pa]
	SigHardEnd float64      // end flow stress of the harder layer [Pa]
	SigMean    float64      // weighted mean flow stress [Pa]
	Geometry   Geometry     // FEB geometry
	Factors    Factors      // FEB factors
}

// Result holds the roll force and torque
type Result struct {
	Force   float64 // roll force [N]
	Torque  float64 // roll torque [N⋅m]
	Details Details // intermediate results
}

// layer holds the data of one layer during a solve
type layer struct {
	name string
	c    mflow.Coeffs
	h0   float64
	σ0   float64
}

// RollForceAndTorque computes the roll force and torque for a two-layer workpiece
//
//  1. contact length, strain and equivalent strain rate of the whole workpiece
//  2. initial flow stresses; the layer with the larger value is the harder one.
//     Ties are resolved by taking the upper layer as the harder one
//  3. bonding height within the softer layer
//  4. β = x/(x + h0hard); end heights β⋅h1 (soft) and (1-β)⋅h1 (hard)
//  5. end strains and end flow stresses of both layers
//  6. mean flow stress: (σsi + w⋅σse + σhi + w⋅σhe) / (4 + 2(w-1))
//  7. FEB factors for the overall reduction
//  8. F = 1.15⋅kf⋅b⋅√(R⋅Δh)⋅F1 and M = 2⋅R⋅h0²⋅kf⋅b⋅F2/h1
//
// A nil cfg means default configuration.
func RollForceAndTorque(p Pass, upper, lower mflow.Coeffs, cfg *Config) (out Result, err error) {

	// input
	cfg = orDefault(cfg)
	if err = cfg.PostProcess(); err != nil {
		return
	}
	if err = p.Check(); err != nil {
		return
	}
	d := &out.Details

	// kinematics
	h0 := p.Upper + p.Lower
	d.ContactLength, err = ContactLength(h0, p.RollGap, p.Radius)
	if err != nil {
		return
	}
	d.Strain, err = StrainPhi(h0, p.RollGap)
	if err != nil {
		return
	}
	d.StrainRate, err = EquivalentStrainRate(p.Velocity, d.ContactLength, d.Strain)
	if err != nil {
		return
	}

	// initial flow stresses
	up := layer{name: Upper, c: upper, h0: p.Upper}
	lo := layer{name: Lower, c: lower, h0: p.Lower}
	up.σ0, err = mflow.FlowStress(0, upper, d.StrainRate, p.Temperature)
	if err != nil {
		return out, newError("clad.initial", KindInvalidMaterialState, Upper, err)
	}
	lo.σ0, err = mflow.FlowStress(0, lower, d.StrainRate, p.Temperature)
	if err != nil {
		return out, newError("clad.initial", KindInvalidMaterialState, Lower, err)
	}

	// sort
	hard, soft := up, lo
	if lo.σ0 > up.σ0 {
		hard, soft = lo, up
	}
	d.Harder = hard.name
	d.SigHardIni, d.SigSoftIni = hard.σ0, soft.σ0

	// bonding point
	d.Bonding, err = BondingHeight(soft.c, d.StrainRate, p.Temperature, soft.h0, hard.σ0, cfg)
	if err != nil {
		return out, newError("clad.bonding", KindSolverDivergence, soft.name, err)
	}

	// end heights
	d.Beta = Beta(d.Bonding.Height, hard.h0)
	d.EndSoft = d.Beta * p.RollGap
	d.EndHard = (1 - d.Beta) * p.RollGap

	// end strains and flow stresses
	d.StrainSoft, err = StrainPhi(soft.h0, d.EndSoft)
	if err != nil {
		return out, newError("clad.end", KindInvalidGeometry, soft.name, err)
	}
	d.StrainHard, err = StrainPhi(hard.h0, d.EndHard)
	if err != nil {
		return out, newError("clad.end", KindInvalidGeometry, hard.name, err)
	}
	d.SigSoftEnd, err = mflow.FlowStress(d.StrainSoft, soft.c, d.StrainRate, p.Temperature)
	if err != nil {
		return out, newError("clad.end", KindInvalidMaterialState, soft.name, err)
	}
	d.SigHardEnd, err = mflow.FlowStress(d.StrainHard, hard.c, d.StrainRate, p.Temperature)
	if err != nil {
		return out, newError("clad.end", KindInvalidMaterialState, hard.name, err)
	}

	// mean flow stress
	d.SigMean = MeanFlowStress(d.SigSoftIni, d.SigSoftEnd, d.SigHardIni, d.SigHardEnd, cfg.Weight)

	// FEB factors over the initial height
	h0 = soft.h0 + hard.h0
	r, err := StrainEpsilon(h0, p.RollGap)
	if err != nil {
		return
	}
	d.Geometry, err = NeutralPoint(p.Friction, p.Radius, p.RollGap, r)
	if err != nil {
		return out, newError("clad.feb", KindInvalidGeometry, "", err)
	}
	d.Factors, err = factors(d.Geometry, cfg)
	if err != nil {
		return out, newError("clad.feb", KindIntegrationFailure, "", err)
	}

	// force and torque
	out.Force = RollForce(d.SigMean, p.Width, p.Radius, h0, p.RollGap, d.Factors.F1)
	out.Torque = RollTorque(p.Radius, h0, p.RollGap, d.SigMean, p.Width, d.Factors.F2)
	if cfg.Verbose {
		io.Pf("clad: harder=%s β=%g kf=%g F1=%g F2=%g\n", d.Harder, d.Beta, d.SigMean, d.Factors.F1, d.Factors.F2)
		io.PfGreen("clad: force=%g N torque=%g N⋅m\n", out.Force, out.Torque)
	}
	return
}

// MeanFlowStress computes the weighted mean flow stress of both layers
//  w -- weight of end-state stresses; w=1 gives the plain average
func MeanFlowStress(σsoftIni, σsoftEnd, σhardIni, σhardEnd, w float64) float64 {
	return (σsoftIni + w*σsoftEnd + σhardIni + w*σhardEnd) / (4 + 2*(w-1))
}

// RollForce computes the FEB roll force F = 1.15⋅kf⋅b⋅√(R⋅(h0-h1))⋅F1
func RollForce(kf, b, R, h0, h1, F1 float64) float64 {
	return 1.15 * kf * b * math.Sqrt(R*(h0-h1)) * F1
}

// RollTorque computes the FEB roll torque M = 2⋅R⋅h0²⋅kf⋅b⋅F2/h1
func RollTorque(R, h0, h1, kf, b, F2 float64) float64 {
	return 2 * R * h0 * h0 * kf * b * F2 / h1
}
