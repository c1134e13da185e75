// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/dougUCN/PENTrack/field"
	"github.com/dougUCN/PENTrack/geo"
	"github.com/dougUCN/PENTrack/material"
	"github.com/dougUCN/PENTrack/out"
	"github.com/dougUCN/PENTrack/particle"
	"github.com/dougUCN/PENTrack/sim"
)

// This is a minimal demonstration wiring, not a configuration-file
// driven driver: reading a named geometry/material/field setup from
// disk is out of scope (SPEC_FULL.md §3.NEW), so every value below is
// built directly from Go literals the way the package tests do.
func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nPENTrack -- ultra-cold particle tracking\n\n")
	io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	nparticles := flag.Int("n", 10, "number of neutrons to track")
	outdir := flag.String("out", ".", "output directory for end/track files")
	flag.Parse()

	materials, err := material.Fixtures()
	if err != nil {
		chk.Panic("loading material fixtures failed: %v", err)
	}

	box := &geo.Solid{ID: 2, Name: "storage-volume", MaterialName: "stainless_steel", Mesh: storageBox()}
	geom, err := geo.NewGeometry([]*geo.Solid{box}, geo.Vec3{-1, -1, -1}, geo.Vec3{1, 1, 1})
	if err != nil {
		chk.Panic("geometry setup failed: %v", err)
	}

	fields := field.NewManager()

	sinks := out.NewFileSinks(*outdir)
	defer sinks.Close()

	integrator := &sim.Integrator{Geom: geom, Fields: fields, EndSink: sinks, Track: sinks}
	cfg := sim.RunConfig{TMax: 500, MaxTrajLength: 1e4, MaxSampleDist: sim.DefaultMaxSampleDist}

	var particles []*particle.Instance
	for i := 0; i < *nparticles; i++ {
		species := particle.NewNeutron()
		inst := &particle.Instance{
			Species:  species,
			Physics:  particle.NeutronPhysics(species, materials),
			Number:   i,
			Lifetime: particle.DrawNeutronLifetime(),
			StartT:   0,
			StartY:   particle.State{0, 0, 0.1, 0, 0, 0},
			StartPol: 1,
		}
		inst.Polarity = inst.StartPol
		particles = append(particles, inst)
	}

	if err := sim.RunMany(integrator, particles, sim.RunManyConfig{Run: cfg}); err != nil {
		chk.Panic("run failed: %v", err)
	}

	io.Pf("tracked %d neutrons\n", len(particles))
}

// storageBox builds a closed unit cube centred on the origin, standing
// in for a UCN storage volume.
func storageBox() geo.Mesh {
	c := func(x, y, z float64) geo.Vec3 { return geo.Vec3{x, y, z} }
	p := [8]geo.Vec3{
		c(-0.5, -0.5, -0.5), c(0.5, -0.5, -0.5), c(0.5, 0.5, -0.5), c(-0.5, 0.5, -0.5),
		c(-0.5, -0.5, 0.5), c(0.5, -0.5, 0.5), c(0.5, 0.5, 0.5), c(-0.5, 0.5, 0.5),
	}
	quad := func(a, b, cc, d int) []geo.Triangle {
		return []geo.Triangle{{p[a], p[cc], p[b]}, {p[a], p[d], p[cc]}}
	}
	var tris []geo.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...) // bottom, outward normal -z
	tris = append(tris, quad(4, 7, 6, 5)...) // top, outward normal +z
	tris = append(tris, quad(0, 3, 7, 4)...) // -x side
	tris = append(tris, quad(1, 5, 6, 2)...) // +x side
	tris = append(tris, quad(0, 4, 5, 1)...) // -y side
	tris = append(tris, quad(3, 2, 6, 7)...) // +y side
	return &geo.TriMesh{Triangles: tris}
}
