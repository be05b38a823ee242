// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package roll implements force and torque models for flat rolling of clad workpieces
package roll

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ContactLength computes the projected length of the arc of contact between
// workpiece and rolls (same upper and lower rolls)
//  h0 -- height at entry
//  h1 -- height at exit
//  R  -- roll radius
func ContactLength(h0, h1, R float64) (ld float64, err error) {
	Δh := h0 - h1
	d := R*Δh - Δh*Δh/4.0
	if d < 0 || !finite(d) {
		return 0, &Error{Op: "contact", Kind: KindInvalidGeometry,
			Err: chk.Err("roll radius R=%g cannot achieve reduction from h0=%g to h1=%g", R, h0, h1)}
	}
	return math.Sqrt(d), nil
}

// StrainPhi computes the logarithmic strain ln(h0/h1)
func StrainPhi(h0, h1 float64) (φ float64, err error) {
	if h0 <= 0 || h1 <= 0 {
		return 0, &Error{Op: "strain", Kind: KindInvalidGeometry,
			Err: chk.Err("heights must be positive. h0=%g, h1=%g", h0, h1)}
	}
	return math.Log(h0 / h1), nil
}

// StrainEpsilon computes the reduction (h0-h1)/h0
func StrainEpsilon(h0, h1 float64) (r float64, err error) {
	if h0 <= 0 {
		return 0, &Error{Op: "reduction", Kind: KindInvalidGeometry,
			Err: chk.Err("height at entry must be positive. h0=%g", h0)}
	}
	return (h0 - h1) / h0, nil
}

// EquivalentStrainRate computes the mean equivalent strain rate according to Hoff and Dahl
//  v  -- roll surface velocity
//  ld -- contact length
//  φ  -- strain
func EquivalentStrainRate(v, ld, φ float64) (dφ float64, err error) {
	if ld == 0 {
		return 0, &Error{Op: "strainrate", Kind: KindInvalidGeometry,
			Err: chk.Err("contact length must not be zero")}
	}
	return v * φ / ld, nil
}

// Beta computes the relative influence of the first layer: h1/(h1+h2)
func Beta(h1, h2 float64) float64 {
	return h1 / (h1 + h2)
}
