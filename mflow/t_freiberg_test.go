// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mflow

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// nickel, cold forming
func nickelCold() Coeffs {
	return Coeffs{
		A:              752e6,
		M1:             -0.000656,
		M2:             0.22981,
		M3:             -0.00311,
		M4:             -0.00124,
		BaseStrain:     DefaultBaseStrain,
		BaseStrainRate: DefaultBaseStrainRate,
	}
}

func Test_freiberg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freiberg01. regression value at zero strain")

	σ, err := FlowStress(0, nickelCold(), 0, 293.15)
	if err != nil {
		tst.Errorf("FlowStress failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", σ)

	// a ⋅ exp(20⋅m1) ⋅ 0.05^m2 ⋅ 0.1^m3 ⋅ exp(m4/0.05)
	chk.Float64(tst, "σ", 1e-4, σ, 366327642.0478227)
}

func Test_freiberg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freiberg02. softening with temperature")

	c := nickelCold()
	σcold, err := FlowStress(0.2, c, 10, 293.15)
	if err != nil {
		tst.Errorf("FlowStress failed: %v\n", err)
		return
	}
	σwarm, err := FlowStress(0.2, c, 10, 573.15)
	if err != nil {
		tst.Errorf("FlowStress failed: %v\n", err)
		return
	}
	io.Pforan("σcold = %v\n", σcold)
	io.Pforan("σwarm = %v\n", σwarm)
	if σwarm >= σcold {
		tst.Errorf("flow stress must decrease with temperature when m1 < 0: %g >= %g\n", σwarm, σcold)
	}
}

func Test_freiberg03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freiberg03. residual from height")

	c := nickelCold()
	h0, rate, T := 0.002, 12.5, 293.15
	for _, x := range []float64{0.0021, 0.002, 0.0019, 0.0015, 0.001} {
		res, err := FlowStressFromHeight(x, c, rate, T, h0, 0)
		if err != nil {
			tst.Errorf("FlowStressFromHeight failed: %v\n", err)
			return
		}
		σ, err := FlowStress(math.Log(h0/x), c, rate, T)
		if err != nil {
			tst.Errorf("FlowStress failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("-res(x=%g)", x), 1e-6, -res, σ)

		// shifted by the reference stress
		σref := 4e8
		res, _ = FlowStressFromHeight(x, c, rate, T, h0, σref)
		chk.Float64(tst, io.Sf("res(x=%g)", x), 1e-6, res, σref-σ)
	}
}

func Test_freiberg04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freiberg04. invalid material states")

	c := nickelCold()
	_, err := FlowStress(-0.05, c, 1, 293.15)
	if !errors.Is(err, ErrInvalidState) {
		tst.Errorf("zero effective strain must be an invalid state. err = %v\n", err)
	}
	_, err = FlowStress(0.1, c, -0.1, 293.15)
	if !errors.Is(err, ErrInvalidState) {
		tst.Errorf("zero effective strain rate must be an invalid state. err = %v\n", err)
	}
	_, err = FlowStressFromHeight(0, c, 1, 293.15, 0.002, 0)
	if !errors.Is(err, ErrInvalidState) {
		tst.Errorf("zero height must be an invalid state. err = %v\n", err)
	}
	_, err = FlowStressFromHeight(0.01, c, 1, 293.15, 0.002, 0)
	if !errors.Is(err, ErrInvalidState) {
		tst.Errorf("ln(h0/x) + baseStrain < 0 must be an invalid state. err = %v\n", err)
	}
	io.Pforan("last err = %v\n", err)
}

func Test_freiberg05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("freiberg05. parameters")

	c, err := NewCoeffs([]*utl.P{
		&utl.P{N: "a", V: 153.939},
		&utl.P{N: "m1", V: -0.00182},
		&utl.P{N: "m2", V: 0.22160},
		&utl.P{N: "m3", V: 0.02950},
		&utl.P{N: "m4", V: 0.00210},
	})
	if err != nil {
		tst.Errorf("NewCoeffs failed: %v\n", err)
		return
	}
	chk.Float64(tst, "a", 1e-15, c.A, 153.939)
	chk.Float64(tst, "m4", 1e-15, c.M4, 0.00210)
	chk.Float64(tst, "m9", 1e-15, c.M9, 0)
	chk.Float64(tst, "baseStrain", 1e-15, c.BaseStrain, 0.05)
	chk.Float64(tst, "baseStrainRate", 1e-15, c.BaseStrainRate, 0.1)

	// round trip
	d, err := NewCoeffs(c.GetPrms())
	if err != nil {
		tst.Errorf("NewCoeffs failed: %v\n", err)
		return
	}
	if d != c {
		tst.Errorf("round trip failed: %+v != %+v\n", d, c)
	}

	// errors
	_, err = NewCoeffs([]*utl.P{&utl.P{N: "a", V: 1}, &utl.P{N: "m10", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter must be rejected\n")
	}
	_, err = NewCoeffs([]*utl.P{&utl.P{N: "m1", V: 1}})
	if err == nil {
		tst.Errorf("missing scale factor must be rejected\n")
	}
	_, err = NewCoeffs([]*utl.P{&utl.P{N: "a", V: -1}})
	if err == nil {
		tst.Errorf("negative scale factor must be rejected\n")
	}
}
