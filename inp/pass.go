// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/roll"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LayerData holds the data of one layer of the workpiece
type LayerData struct {
	Mat       string  `json:"mat"`       // material name
	Thickness float64 `json:"thickness"` // initial thickness [m]
}

// ProcessData holds the process data of a pass
type ProcessData struct {
	Radius      float64 `json:"radius"`      // roll radius [m]
	Friction    float64 `json:"friction"`    // friction coefficient
	RollGap     float64 `json:"rollgap"`     // final height [m]
	Velocity    float64 `json:"velocity"`    // roll surface velocity [m/s]
	Temperature float64 `json:"temperature"` // absolute temperature [K]
	TempC       float64 `json:"tempc"`       // temperature [°C]; used if Temperature is zero
	Width       float64 `json:"width"`       // workpiece width [m]
}

// PassData holds all data of a clad-layer rolling job
type PassData struct {

	// input
	Desc     string      `json:"desc"`     // description of job
	Matfile  string      `json:"matfile"`  // materials file path; empty means built-in database
	DirOut   string      `json:"dirout"`   // directory for output; e.g. /tmp/clad
	Upper    LayerData   `json:"upper"`    // upper layer
	Lower    LayerData   `json:"lower"`    // lower layer
	Process  ProcessData `json:"process"`  // process data
	Gaps     []float64   `json:"gaps"`     // roll gaps of a schedule; empty means Process.RollGap only
	Nworkers int         `json:"nworkers"` // number of concurrent workers for schedules
	Solver   roll.Config `json:"solver"`   // solver settings

	// derived
	Key         string       `json:"-"` // job key; e.g. nini01.pass => nini01
	MatParams   *MatDb       `json:"-"` // materials' parameters
	UpperCoeffs mflow.Coeffs `json:"-"` // coefficients of upper layer
	LowerCoeffs mflow.Coeffs `json:"-"` // coefficients of lower layer
}

// ReadPass reads a clad-layer rolling job from a JSON file
func ReadPass(path string) (o *PassData, err error) {

	// read file
	path = os.ExpandEnv(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("ReadPass: cannot read pass file %q: %w", path, err)
	}

	// set default values
	o = new(PassData)
	o.Solver.SetDefault()
	o.Nworkers = 1

	// decode
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err = dec.Decode(o); err != nil {
		return nil, chk.Err("ReadPass: cannot unmarshal pass file %q: %w", path, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(path))
	if o.DirOut == "" {
		o.DirOut = "/tmp/clad/" + o.Key
	}

	// temperature
	if o.Process.Temperature == 0 && o.Process.TempC != 0 {
		o.Process.Temperature = o.Process.TempC + mflow.CtoK
	}

	// solver
	if err = o.Solver.PostProcess(); err != nil {
		return nil, chk.Err("ReadPass: file %q: %w", path, err)
	}

	// materials database
	if o.Matfile == "" {
		o.MatParams, err = DefaultMatDb()
	} else {
		fn := os.ExpandEnv(o.Matfile)
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(filepath.Dir(path), fn)
		}
		o.MatParams, err = ReadMatDb(fn)
	}
	if err != nil {
		return nil, chk.Err("ReadPass: cannot read materials database: %w", err)
	}

	// layers
	o.UpperCoeffs, err = o.MatParams.Coeffs(o.Upper.Mat)
	if err != nil {
		return nil, chk.Err("ReadPass: upper layer: %w", err)
	}
	o.LowerCoeffs, err = o.MatParams.Coeffs(o.Lower.Mat)
	if err != nil {
		return nil, chk.Err("ReadPass: lower layer: %w", err)
	}
	return
}

// Pass returns the pass with the roll gap of the process data
func (o *PassData) Pass() roll.Pass {
	return roll.Pass{
		Radius:      o.Process.Radius,
		Friction:    o.Process.Friction,
		RollGap:     o.Process.RollGap,
		Velocity:    o.Process.Velocity,
		Temperature: o.Process.Temperature,
		Width:       o.Process.Width,
		Upper:       o.Upper.Thickness,
		Lower:       o.Lower.Thickness,
	}
}

// Passes returns one pass for each roll gap of the schedule
func (o *PassData) Passes() (passes []roll.Pass) {
	if len(o.Gaps) == 0 {
		return []roll.Pass{o.Pass()}
	}
	for _, h1 := range o.Gaps {
		p := o.Pass()
		p.RollGap = h1
		passes = append(passes, p)
	}
	return
}
