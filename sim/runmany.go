// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"runtime"
	"sync"

	"github.com/dougUCN/PENTrack/particle"
)

// RunManyConfig bounds the worker pool RunMany uses; Nproc<=0 defaults
// to runtime.GOMAXPROCS(0), mirroring the teacher's fem.FEM.Nproc
// field (fem/fem.go), which likewise defaults to 1 processor unless an
// explicit worker count is given.
type RunManyConfig struct {
	Nproc int
	Run   RunConfig
}

// RunMany fans particles out over a bounded worker-goroutine pool and
// runs each to a terminal status via in.Run, per spec.md §5 ("the
// Monte-Carlo driver may trivially fan out particles across OS
// threads or processes at that level"). Integrator itself holds no
// mutable state, so the same *Integrator is safe to share across every
// worker; particle.Instance values are not shared between goroutines.
//
// The first per-particle error is returned after every particle has
// finished (workers are not cancelled early), so that a single bad
// particle does not discard the output already written for the rest
// of the batch.
func RunMany(in *Integrator, particles []*particle.Instance, cfg RunManyConfig) error {
	nproc := cfg.Nproc
	if nproc <= 0 {
		nproc = runtime.GOMAXPROCS(0)
	}
	if nproc > len(particles) {
		nproc = len(particles)
	}
	if nproc < 1 {
		return nil
	}

	jobs := make(chan *particle.Instance)
	errs := make(chan error, len(particles))

	var wg sync.WaitGroup
	wg.Add(nproc)
	for w := 0; w < nproc; w++ {
		go func() {
			defer wg.Done()
			for inst := range jobs {
				errs <- in.Run(inst, cfg.Run)
			}
		}()
	}

	for _, inst := range particles {
		jobs <- inst
	}
	close(jobs)
	wg.Wait()
	close(errs)

	var first error
	for err := range errs {
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}
