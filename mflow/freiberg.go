// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mflow implements flow stress models for hot and cold forming
package mflow

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ErrInvalidState is returned when the effective strain or strain rate reaching
// a power, logarithm or division of the model is not positive
var ErrInvalidState = errors.New("invalid material state")

// CtoK is the offset between the absolute (K) and the Celsius (°C) scales
const CtoK = 273.15

// default offsets added to strain and strain rate before evaluation
const (
	DefaultBaseStrain     = 0.05
	DefaultBaseStrainRate = 0.1
)

// Coeffs holds the coefficients of the Freiberg flow stress model (Hensel-Spittel form)
//
//   σ = a ⋅ exp(m1⋅T) ⋅ φ^m2 ⋅ φ̇^m3 ⋅ exp(m4/φ) ⋅ (1+φ)^(m5⋅T) ⋅ (1+φ)^m6
//         ⋅ exp(m7⋅φ) ⋅ φ̇^(m8⋅T) ⋅ T^m9
//
//   with φ = strain + BaseStrain, φ̇ = strainRate + BaseStrainRate and T in °C
//
// Coeffs is a value type: it is passed by copy and never modified by this package.
type Coeffs struct {
	A  float64 // scale factor [Pa]
	M1 float64 // temperature sensitivity
	M2 float64 // strain hardening exponent
	M3 float64 // strain rate sensitivity
	M4 float64 // strain softening coefficient
	M5 float64 // coupled temperature/strain coefficient
	M6 float64 // strain coefficient
	M7 float64 // exponential strain coefficient
	M8 float64 // coupled temperature/strain-rate coefficient
	M9 float64 // temperature exponent

	BaseStrain     float64 // offset added to strain
	BaseStrainRate float64 // offset added to strain rate [1/s]
}

// NewCoeffs parses a set of named parameters. Unset exponents default to zero
// and the base offsets default to DefaultBaseStrain and DefaultBaseStrainRate
func NewCoeffs(prms utl.Params) (o Coeffs, err error) {

	// default values
	o.BaseStrain = DefaultBaseStrain
	o.BaseStrainRate = DefaultBaseStrainRate

	// parameters
	var hasA bool
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A, hasA = p.V, true
		case "m1":
			o.M1 = p.V
		case "m2":
			o.M2 = p.V
		case "m3":
			o.M3 = p.V
		case "m4":
			o.M4 = p.V
		case "m5":
			o.M5 = p.V
		case "m6":
			o.M6 = p.V
		case "m7":
			o.M7 = p.V
		case "m8":
			o.M8 = p.V
		case "m9":
			o.M9 = p.V
		case "baseStrain":
			o.BaseStrain = p.V
		case "baseStrainRate":
			o.BaseStrainRate = p.V
		default:
			return o, chk.Err("freiberg: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if !hasA {
		return o, chk.Err("freiberg: parameter %q is required\n", "a")
	}
	if o.A <= 0 {
		return o, chk.Err("freiberg: scale factor a must be positive. a=%g is invalid\n", o.A)
	}
	return
}

// GetPrms returns the parameters of this coefficient set
func (o Coeffs) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "a", V: o.A},
		&utl.P{N: "m1", V: o.M1},
		&utl.P{N: "m2", V: o.M2},
		&utl.P{N: "m3", V: o.M3},
		&utl.P{N: "m4", V: o.M4},
		&utl.P{N: "m5", V: o.M5},
		&utl.P{N: "m6", V: o.M6},
		&utl.P{N: "m7", V: o.M7},
		&utl.P{N: "m8", V: o.M8},
		&utl.P{N: "m9", V: o.M9},
		&utl.P{N: "baseStrain", V: o.BaseStrain},
		&utl.P{N: "baseStrainRate", V: o.BaseStrainRate},
	}
}

// FlowStress computes the flow stress [Pa]
//  strain      -- equivalent strain
//  strainRate  -- equivalent strain rate [1/s]
//  temperature -- absolute temperature [K]
func FlowStress(strain float64, c Coeffs, strainRate, temperature float64) (σ float64, err error) {
	return evaluate(strain+c.BaseStrain, c, strainRate+c.BaseStrainRate, temperature-CtoK)
}

// FlowStressFromHeight computes the residual
//
//   res = σref - σ(ln(h0/x))
//
// which vanishes at the height x where the flow stress of the material equals σref
//  x  -- current height
//  h0 -- starting height
func FlowStressFromHeight(x float64, c Coeffs, strainRate, temperature, h0, σref float64) (res float64, err error) {
	if x <= 0 || h0 <= 0 {
		return 0, chk.Err("heights must be positive. x=%g, h0=%g: %w", x, h0, ErrInvalidState)
	}
	σ, err := evaluate(math.Log(h0/x)+c.BaseStrain, c, strainRate+c.BaseStrainRate, temperature-CtoK)
	if err != nil {
		return
	}
	return σref - σ, nil
}

// evaluate computes the model with effective strain φ, strain rate dφ and temperature T [°C]
func evaluate(φ float64, c Coeffs, dφ, T float64) (σ float64, err error) {
	if !(φ > 0) {
		return 0, chk.Err("effective strain must be positive. φ=%g: %w", φ, ErrInvalidState)
	}
	if !(dφ > 0) {
		return 0, chk.Err("effective strain rate must be positive. φ̇=%g: %w", dφ, ErrInvalidState)
	}
	σ = c.A * math.Exp(c.M1*T) * math.Pow(φ, c.M2) * math.Pow(dφ, c.M3) * math.Exp(c.M4/φ) *
		math.Pow(1+φ, c.M5*T) * math.Pow(1+φ, c.M6) * math.Exp(c.M7*φ) *
		math.Pow(dφ, c.M8*T) * math.Pow(T, c.M9)
	if math.IsNaN(σ) || math.IsInf(σ, 0) {
		return 0, chk.Err("flow stress is not finite (φ=%g, φ̇=%g, T=%g°C): %w", φ, dφ, T, ErrInvalidState)
	}
	return
}
