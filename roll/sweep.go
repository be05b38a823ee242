// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roll

import (
	"context"

	"github.com/Institute-of-Metal-Forming/notebooks-ilsenburg/mflow"
	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Sweep computes the force and torque of many independent passes concurrently
//  nworkers -- number of goroutines; clamped to [1, MaxFid]
// Each worker integrates with its own QUADPACK function slot; cfg.Fid is ignored.
// The first failure cancels the remaining passes.
func Sweep(ctx context.Context, passes []Pass, upper, lower mflow.Coeffs, cfg *Config, nworkers int) ([]Result, error) {

	// workers
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > MaxFid {
		nworkers = MaxFid
	}
	if nworkers > len(passes) {
		nworkers = len(passes)
	}
	base := *orDefault(cfg)

	// distribute passes by index
	res := make([]Result, len(passes))
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < nworkers; w++ {
		wcfg := base
		wcfg.Fid = w
		g.Go(func() error {
			for i := w; i < len(passes); i += nworkers {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := RollForceAndTorque(passes[i], upper, lower, &wcfg)
				if err != nil {
					return chk.Err("pass %d: %w", i, err)
				}
				res[i] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
