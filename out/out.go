// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of clad-layer rolling results
package out

import (
	"bytes"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/roll"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Keys holds the headers of the results table
var Keys = []string{
	"h1",     // roll gap [m]
	"beta",   // relative end height of the softer layer
	"x",      // bonding height [m]
	"kf",     // mean flow stress [Pa]
	"F1",     // FEB force factor
	"F2",     // FEB torque factor
	"force",  // roll force [N]
	"torque", // roll torque [N⋅m]
}

// Columns returns the columns of the results table; one row per pass
func Columns(passes []roll.Pass, res []roll.Result) (cols [][]float64, err error) {
	if len(passes) != len(res) {
		return nil, chk.Err("number of passes (%d) and results (%d) must be equal", len(passes), len(res))
	}
	cols = make([][]float64, len(Keys))
	for j := range cols {
		cols[j] = make([]float64, len(res))
	}
	for i, r := range res {
		d := r.Details
		for j, v := range []float64{passes[i].RollGap, d.Beta, d.Bonding.Height, d.SigMean, d.Factors.F1, d.Factors.F2, r.Force, r.Torque} {
			cols[j][i] = v
		}
	}
	return
}

// Table returns a text table of results whose first line contains the headers
func Table(passes []roll.Pass, res []roll.Result) (buf *bytes.Buffer, err error) {
	cols, err := Columns(passes, res)
	if err != nil {
		return
	}
	buf = new(bytes.Buffer)
	for _, key := range Keys {
		io.Ff(buf, "%23s", key)
	}
	io.Ff(buf, "\n")
	for i := range res {
		for j := range Keys {
			io.Ff(buf, "%23.15e", cols[j][i])
		}
		io.Ff(buf, "\n")
	}
	return
}

// Summary returns a formatted description of one result
func Summary(p roll.Pass, r roll.Result) (l string) {
	d := r.Details
	soft := roll.Lower
	if d.Harder == roll.Lower {
		soft = roll.Upper
	}
	l += io.Sf("roll gap              : %g m\n", p.RollGap)
	l += io.Sf("contact length        : %g m\n", d.ContactLength)
	l += io.Sf("strain, strain rate   : %g, %g 1/s\n", d.Strain, d.StrainRate)
	l += io.Sf("harder layer          : %s\n", d.Harder)
	l += io.Sf("bonding height (%s) : %g m\n", soft, d.Bonding.Height)
	l += io.Sf("β                     : %g\n", d.Beta)
	l += io.Sf("end heights soft/hard : %g, %g m\n", d.EndSoft, d.EndHard)
	l += io.Sf("mean flow stress      : %g Pa\n", d.SigMean)
	l += io.Sf("F1, F2                : %g, %g\n", d.Factors.F1, d.Factors.F2)
	l += io.Sf("force                 : %g N\n", r.Force)
	l += io.Sf("torque                : %g N⋅m\n", r.Torque)
	return
}
