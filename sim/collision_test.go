// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/dougUCN/PENTrack/geo"
	"github.com/dougUCN/PENTrack/particle"
)

// wallAt builds a single axis-aligned wall solid in the y-z plane at
// x=x0, large enough that a straight shot along x always crosses it.
// Winding is chosen so the outward normal points in -x: a particle
// travelling in +x (as all the tests below do) is entering the solid.
func wallAt(id int, x0 float64) *geo.Solid {
	p := func(y, z float64) geo.Vec3 { return geo.Vec3{x0, y, z} }
	tris := []geo.Triangle{
		{p(-10, -10), p(10, 10), p(10, -10)},
		{p(-10, -10), p(-10, 10), p(10, 10)},
	}
	return &geo.Solid{ID: id, Name: "wall", Mesh: &geo.TriMesh{Triangles: tris}}
}

func straightLineDense(y1, y2 particle.State, t1, t2 float64) DenseFunc {
	return func(t float64) particle.State {
		if t2 == t1 {
			return y1
		}
		frac := (t - t1) / (t2 - t1)
		var y particle.State
		for i := 0; i < 6; i++ {
			y[i] = y1[i] + frac*(y2[i]-y1[i])
		}
		return y
	}
}

func reflectingInstance() *particle.Instance {
	species := &particle.Species{Name: "bisect-probe", Charge: 0, Mass: 1}
	return &particle.Instance{
		Species: species,
		Physics: particle.Physics{
			OnHit: func(inst *particle.Instance, t1 float64, y1 particle.State, t2 *float64, y2 *particle.State, normal la.Vector, leaving, entering *geo.Solid) (bool, error) {
				vel := y1.Vel()
				vn := vel[0]*normal[0] + vel[1]*normal[1] + vel[2]*normal[2]
				pos := y1.Pos()
				*y2 = particle.State{
					pos[0], pos[1], pos[2],
					vel[0] - 2*vn*normal[0],
					vel[1] - 2*vn*normal[1],
					vel[2] - 2*vn*normal[2],
				}
				*t2 = t1
				inst.HitCount++
				return true, nil
			},
		},
	}
}

func Test_collision01(tst *testing.T) {

	chk.PrintTitle("collision01: bisection localises a wall crossing within the iteration cap")

	wall := wallAt(2, 0.1)
	g, err := geo.NewGeometry([]*geo.Solid{wall}, geo.Vec3{-10, -10, -10}, geo.Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}

	inst := reflectingInstance()
	cur := g.Containment(geo.Vec3{0, 0, 0}, 0)
	resolver := &Resolver{Geom: g}

	y1 := particle.State{0, 0, 0, 1e3, 0, 0}
	y2 := particle.State{0.2, 0, 0, 1e3, 0, 0}
	dense := straightLineDense(y1, y2, 0, 2e-4)

	changed, tOut, yOut, err := resolver.Resolve(inst, cur, 0, y1, 2e-4, y2, dense, 1)
	if err != nil {
		tst.Fatalf("Resolve failed: %v", err)
	}
	if !changed {
		tst.Fatalf("expected the wall crossing to be resolved as a reflection")
	}
	if inst.HitCount != 1 {
		tst.Fatalf("HitCount = %d, want 1", inst.HitCount)
	}
	if yOut[3] >= 0 {
		tst.Fatalf("vx after reflection = %g, want < 0", yOut[3])
	}
	if tOut < 0 || tOut > 2e-4 {
		tst.Fatalf("tOut = %g out of range [0, 2e-4]", tOut)
	}
	if cur.Contains(2) {
		tst.Fatalf("reflected particle must not be registered as having entered the wall solid")
	}
}

func Test_collision02(tst *testing.T) {

	chk.PrintTitle("collision02: passing through (unreflected) updates the current-solid set")

	wall := wallAt(2, 0.1)
	g, err := geo.NewGeometry([]*geo.Solid{wall}, geo.Vec3{-10, -10, -10}, geo.Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}

	species := &particle.Species{Name: "pass-through-probe", Charge: 0, Mass: 1}
	inst := &particle.Instance{
		Species: species,
		Physics: particle.Physics{
			OnHit: func(inst *particle.Instance, t1 float64, y1 particle.State, t2 *float64, y2 *particle.State, normal la.Vector, leaving, entering *geo.Solid) (bool, error) {
				return false, nil // passes through unaffected
			},
		},
	}
	cur := g.Containment(geo.Vec3{0, 0, 0}, 0)
	resolver := &Resolver{Geom: g}

	y1 := particle.State{0, 0, 0, 1e3, 0, 0}
	y2 := particle.State{0.2, 0, 0, 1e3, 0, 0}
	dense := straightLineDense(y1, y2, 0, 2e-4)

	changed, _, _, err := resolver.Resolve(inst, cur, 0, y1, 2e-4, y2, dense, 1)
	if err != nil {
		tst.Fatalf("Resolve failed: %v", err)
	}
	if changed {
		tst.Fatalf("expected no reaction (OnHit reports no change), so the particle should pass through")
	}
	if !cur.Contains(2) {
		tst.Fatalf("unreflected crossing must register entry into the wall solid")
	}
}

func Test_collision03(tst *testing.T) {

	chk.PrintTitle("collision03: entering a solid already in the current-solid set is a numerical error")

	wall := wallAt(2, 0.1)
	g, err := geo.NewGeometry([]*geo.Solid{wall}, geo.Vec3{-10, -10, -10}, geo.Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}
	resolver := &Resolver{Geom: g}
	cur := g.Containment(geo.Vec3{0, 0, 0}, 0)
	if err := cur.Enter(2); err != nil {
		tst.Fatalf("Enter failed: %v", err)
	}

	species := &particle.Species{Name: "dup-entry-probe", Charge: 0, Mass: 1}
	inst := &particle.Instance{Species: species}
	y1 := particle.State{0, 0, 0, 1e3, 0, 0}
	y2 := particle.State{0.2, 0, 0, 1e3, 0, 0}
	rec := geo.CollisionRecord{S: 0.5, SolidID: 2, Normal: geo.Vec3{-1, 0, 0}}

	_, _, _, err = resolver.resolveEntry(inst, cur, 0, y1, 2e-4, y2, rec)
	if err == nil {
		tst.Fatalf("expected a numerical error for re-entering an already-present solid")
	}
}

func Test_collision04(tst *testing.T) {

	chk.PrintTitle("collision04: leaving a solid not in the current-solid set is a numerical error")

	wall := wallAt(2, 0.1)
	g, err := geo.NewGeometry([]*geo.Solid{wall}, geo.Vec3{-10, -10, -10}, geo.Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}
	resolver := &Resolver{Geom: g}
	cur := g.Containment(geo.Vec3{0, 0, 0}, 0) // only the default solid is present

	species := &particle.Species{Name: "bad-exit-probe", Charge: 0, Mass: 1}
	inst := &particle.Instance{Species: species}
	y1 := particle.State{0.2, 0, 0, -1e3, 0, 0}
	y2 := particle.State{0, 0, 0, -1e3, 0, 0}
	rec := geo.CollisionRecord{S: 0.5, SolidID: 2, Normal: geo.Vec3{-1, 0, 0}}

	_, _, _, err = resolver.resolveExit(inst, cur, 0, y1, 2e-4, y2, rec)
	if err == nil {
		tst.Fatalf("expected a numerical error for leaving a solid that was never entered")
	}
}

func Test_collision05(tst *testing.T) {

	chk.PrintTitle("collision05: two solids crossed at the same parametric fraction is a numerical error")

	wallA := wallAt(2, 0.1)
	wallB := wallAt(3, 0.1)
	g, err := geo.NewGeometry([]*geo.Solid{wallA, wallB}, geo.Vec3{-10, -10, -10}, geo.Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}

	species := &particle.Species{Name: "coincident-wall-probe", Charge: 0, Mass: 1}
	inst := &particle.Instance{Species: species}
	cur := g.Containment(geo.Vec3{0, 0, 0}, 0)
	resolver := &Resolver{Geom: g}

	y1 := particle.State{0, 0, 0, 1e3, 0, 0}
	y2 := particle.State{0.2, 0, 0, 1e3, 0, 0}
	dense := straightLineDense(y1, y2, 0, 2e-4)

	_, _, _, err = resolver.Resolve(inst, cur, 0, y1, 2e-4, y2, dense, 1)
	if err == nil {
		tst.Fatalf("expected a numerical error for two coincident solid boundaries")
	}
}

func Test_collision06(tst *testing.T) {

	chk.PrintTitle("collision06: a segment entirely outside the world bounds reports left-world")

	g, err := geo.NewGeometry(nil, geo.Vec3{-1, -1, -1}, geo.Vec3{1, 1, 1})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}
	species := &particle.Species{Name: "escapee", Charge: 0, Mass: 1}
	inst := &particle.Instance{Species: species}
	cur := g.Containment(geo.Vec3{0, 0, 0}, 0)
	resolver := &Resolver{Geom: g}

	y1 := particle.State{5, 0, 0, 1, 0, 0}
	y2 := particle.State{6, 0, 0, 1, 0, 0}
	dense := straightLineDense(y1, y2, 0, 1)

	changed, _, _, err := resolver.Resolve(inst, cur, 0, y1, 1, y2, dense, 1)
	if err != nil {
		tst.Fatalf("Resolve failed: %v", err)
	}
	if !changed {
		tst.Fatalf("expected changed=true for a left-world termination")
	}
	if inst.Status != int(StatusLeftWorld) {
		tst.Fatalf("status = %d, want %d (left-world)", inst.Status, StatusLeftWorld)
	}
}
