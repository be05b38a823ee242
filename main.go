// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/inp"
	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/out"
	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/roll"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".pass", true)
	verbose := io.ArgToBool(1, true)
	trace := io.ArgToBool(2, false)
	saveTable := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nclad -- roll force and torque of clad sheets\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"trace solvers", "trace", trace,
			"save results table", "saveTable", saveTable,
		))
	}

	// job data
	job, err := inp.ReadPass(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	job.Solver.Verbose = trace

	// run
	passes := job.Passes()
	res, err := roll.Sweep(context.Background(), passes, job.UpperCoeffs, job.LowerCoeffs, &job.Solver, job.Nworkers)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	if verbose {
		for i, p := range passes {
			io.Pfcyan("\npass %d: %s (upper) on %s (lower)\n", i, job.Upper.Mat, job.Lower.Mat)
			io.Pf("%s", out.Summary(p, res[i]))
		}
	}
	if saveTable {
		buf, err := out.Table(passes, res)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.WriteFileVD(job.DirOut, job.Key+".res", buf)
	}
}
