// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// nickel, cold forming
func nickelCold() mflow.Coeffs {
	return mflow.Coeffs{
		A:              752e6,
		M1:             -0.000656,
		M2:             0.22981,
		M3:             -0.00311,
		M4:             -0.00124,
		BaseStrain:     mflow.DefaultBaseStrain,
		BaseStrainRate: mflow.DefaultBaseStrainRate,
	}
}

// softNickel returns a nickel-like material with 80% of the strength of nickelCold
func softNickel() mflow.Coeffs {
	c := nickelCold()
	c.A *= 0.8
	return c
}

// testPass returns a pass reducing a 4 mm sheet to 3 mm
func testPass() Pass {
	return Pass{
		Radius:      0.1,
		Friction:    0.1,
		RollGap:     0.003,
		Velocity:    0.5,
		Temperature: 293.15,
		Width:       0.1,
		Upper:       0.002,
		Lower:       0.002,
	}
}
