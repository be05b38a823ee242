// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// gapSeries returns passes with roll gaps from 3.8 mm down to 2.4 mm
func gapSeries(n int) (passes []Pass) {
	for _, h1 := range utl.LinSpace(0.0038, 0.0024, n) {
		p := testPass()
		p.RollGap = h1
		passes = append(passes, p)
	}
	return
}

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. concurrent passes")

	passes := gapSeries(12)
	c, s := nickelCold(), softNickel()
	for _, nworkers := range []int{1, 3, 100} {
		res, err := Sweep(context.Background(), passes, c, s, nil, nworkers)
		if err != nil {
			tst.Errorf("Sweep failed: %v\n", err)
			return
		}
		chk.Int(tst, "len(res)", len(res), len(passes))
		for i, p := range passes {
			ref, err := RollForceAndTorque(p, c, s, nil)
			if err != nil {
				tst.Errorf("RollForceAndTorque failed: %v\n", err)
				return
			}
			chk.Float64(tst, io.Sf("F%d/F", i), 1e-14, res[i].Force/ref.Force, 1)
			chk.Float64(tst, io.Sf("M%d/M", i), 1e-14, res[i].Torque/ref.Torque, 1)
		}
	}

	// larger reductions need larger forces
	res, _ := Sweep(context.Background(), passes, c, s, nil, 4)
	for i := 1; i < len(res); i++ {
		if res[i].Force <= res[i-1].Force {
			tst.Errorf("force must increase with reduction. F[%d]=%g F[%d]=%g\n", i-1, res[i-1].Force, i, res[i].Force)
		}
	}

	// nothing to do
	res, err := Sweep(context.Background(), nil, c, s, nil, 4)
	if err != nil || len(res) != 0 {
		tst.Errorf("empty sweep must return no results. res=%v err=%v\n", res, err)
	}
}

func Test_sweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. failures")

	c, s := nickelCold(), softNickel()
	passes := gapSeries(8)
	passes[5].RollGap = 0.005
	_, err := Sweep(context.Background(), passes, c, s, nil, 3)
	if !errors.Is(err, ErrInvalidGeometry) {
		tst.Errorf("sweep must report an invalid geometry. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.HasPrefix(err.Error(), "pass 5:") {
		tst.Errorf("error must name the failing pass. err = %v\n", err)
	}

	// cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sweep(ctx, gapSeries(4), c, s, nil, 2)
	if !errors.Is(err, context.Canceled) {
		tst.Errorf("cancelled sweep must fail. err = %v\n", err)
	}

	// invalid configuration
	cfg := NewConfig()
	cfg.SolverTol = 0
	_, err = Sweep(context.Background(), gapSeries(4), c, s, cfg, 2)
	if !IsKind(err, KindInvalidConfig) {
		tst.Errorf("sweep must report an invalid configuration. err = %v\n", err)
	}
}

func Test_sweep03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep03. concurrent calls with default settings")

	// all calls share the default QUADPACK slot
	passes := gapSeries(8)
	c, s := nickelCold(), softNickel()
	refs := make([]Result, len(passes))
	for i, p := range passes {
		r, err := RollForceAndTorque(p, c, s, nil)
		if err != nil {
			tst.Errorf("RollForceAndTorque failed: %v\n", err)
			return
		}
		refs[i] = r
	}

	for round := 0; round < 4; round++ {
		res := make([]Result, len(passes))
		errs := make([]error, len(passes))
		var wg sync.WaitGroup
		for i := range passes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res[i], errs[i] = RollForceAndTorque(passes[i], c, s, nil)
			}(i)
		}
		wg.Wait()
		for i := range passes {
			if errs[i] != nil {
				tst.Errorf("pass %d failed: %v\n", i, errs[i])
				return
			}
			chk.Float64(tst, io.Sf("F%d/F", i), 1e-14, res[i].Force/refs[i].Force, 1)
			chk.Float64(tst, io.Sf("M%d/M", i), 1e-14, res[i].Torque/refs[i].Torque, 1)
			chk.Float64(tst, io.Sf("F1[%d]", i), 1e-15, res[i].Details.Factors.F1, refs[i].Details.Factors.F1)
		}
	}

	// two sweeps at once use the same slots
	var wg sync.WaitGroup
	out := make([][]Result, 2)
	errs := make([]error, 2)
	for k := 0; k < 2; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			out[k], errs[k] = Sweep(context.Background(), passes, c, s, nil, 3)
		}(k)
	}
	wg.Wait()
	for k := 0; k < 2; k++ {
		if errs[k] != nil {
			tst.Errorf("Sweep %d failed: %v\n", k, errs[k])
			return
		}
		for i := range passes {
			chk.Float64(tst, io.Sf("sweep%d: F%d/F", k, i), 1e-14, out[k][i].Force/refs[i].Force, 1)
		}
	}

	// slot out of range
	cfg := NewConfig()
	cfg.Fid = MaxFid
	_, err := FEBFactors(0.1, 0.1, 0.003, 0.25, cfg)
	if !IsKind(err, KindInvalidConfig) {
		tst.Errorf("Fid=%d must be an invalid configuration. err = %v\n", MaxFid, err)
	}
}
