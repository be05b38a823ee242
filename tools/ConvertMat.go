// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	matOld := io.ArgToString(0, "")
	matNew := io.ArgToString(1, "materials.yaml")
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"old material filename; empty means built-in", "matOld", matOld,
		"new material filename", "matNew", matNew,
	))

	// read
	var db *inp.MatDb
	var err error
	if matOld == "" {
		db, err = inp.DefaultMatDb()
	} else {
		db, err = inp.ReadMatDb(matOld)
	}
	if err != nil {
		chk.Panic("%v", err)
	}

	// convert old => new
	if err = db.Write(matNew); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("conversion successful; %d materials\n", len(db.Materials))
	io.Pfblue2("file <%s> created\n", matNew)
}
