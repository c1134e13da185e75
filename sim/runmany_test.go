// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/dougUCN/PENTrack/field"
	"github.com/dougUCN/PENTrack/particle"
)

func Test_runmany01(tst *testing.T) {

	chk.PrintTitle("runmany01: RunMany drives every particle to a terminal status")

	in := &Integrator{Geom: emptyWorld(tst), Fields: field.NewManager()}
	cfg := RunManyConfig{Nproc: 4, Run: RunConfig{TMax: 1, MaxTrajLength: 1e6, MaxSampleDist: 0.01}}

	var particles []*particle.Instance
	for i := 0; i < 20; i++ {
		species := neutralSpecies()
		particles = append(particles, &particle.Instance{
			Species: species, Physics: noReactPhysics(species), Number: i,
			Lifetime: 1e9, StartT: 0, StartY: particle.State{0, 0, 0, 1, 0, 0},
		})
	}

	if err := RunMany(in, particles, cfg); err != nil {
		tst.Fatalf("RunMany failed: %v", err)
	}
	for _, p := range particles {
		if p.Status == int(StatusUnknown) {
			tst.Fatalf("particle %d never reached a terminal status", p.Number)
		}
	}
}

func Test_runmany02(tst *testing.T) {

	chk.PrintTitle("runmany02: RunMany with zero particles is a no-op")

	in := &Integrator{Geom: emptyWorld(tst), Fields: field.NewManager()}
	if err := RunMany(in, nil, RunManyConfig{}); err != nil {
		tst.Fatalf("RunMany failed on empty input: %v", err)
	}
}
