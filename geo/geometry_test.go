// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// unitCube returns a closed triangulated unit cube [0,1]^3 with
// outward normals.
func unitCube() *TriMesh {
	// 8 corners
	c := func(x, y, z float64) Vec3 { return Vec3{x, y, z} }
	p := [8]Vec3{
		c(0, 0, 0), c(1, 0, 0), c(1, 1, 0), c(0, 1, 0),
		c(0, 0, 1), c(1, 0, 1), c(1, 1, 1), c(0, 1, 1),
	}
	quad := func(a, b, cc, d int) []Triangle {
		return []Triangle{{p[a], p[b], p[cc]}, {p[a], p[cc], p[d]}}
	}
	var tris []Triangle
	tris = append(tris, quad(0, 3, 2, 1)...) // bottom z=0, normal -z
	tris = append(tris, quad(4, 5, 6, 7)...) // top z=1, normal +z
	tris = append(tris, quad(0, 1, 5, 4)...) // y=0
	tris = append(tris, quad(3, 7, 6, 2)...) // y=1
	tris = append(tris, quad(0, 4, 7, 3)...) // x=0
	tris = append(tris, quad(1, 2, 6, 5)...) // x=1
	return &TriMesh{Triangles: tris}
}

func Test_geometry01(tst *testing.T) {

	chk.PrintTitle("geometry01: containment inside/outside a cube")

	cube := &Solid{ID: 2, Name: "cube", Mesh: unitCube()}
	g, err := NewGeometry([]*Solid{cube}, Vec3{-10, -10, -10}, Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}

	inside := g.Containment(Vec3{0.5, 0.5, 0.5}, 0)
	if !inside.Contains(2) {
		tst.Fatalf("expected solid 2 to contain the cube center")
	}
	if inside.Top() != 2 {
		tst.Fatalf("expected active solid 2, got %d", inside.Top())
	}

	outside := g.Containment(Vec3{5, 5, 5}, 0)
	if outside.Contains(2) {
		tst.Fatalf("expected solid 2 to not contain an outside point")
	}
	if !outside.Contains(DefaultSolidID) {
		tst.Fatalf("expected default solid always present")
	}
}

func Test_geometry02(tst *testing.T) {

	chk.PrintTitle("geometry02: segment crossing a cube face, ordered by s")

	cube := &Solid{ID: 2, Name: "cube", Mesh: unitCube()}
	g, err := NewGeometry([]*Solid{cube}, Vec3{-10, -10, -10}, Vec3{10, 10, 10})
	if err != nil {
		tst.Fatalf("NewGeometry failed: %v", err)
	}

	recs := g.SegmentTest(Vec3{-1, 0.5, 0.5}, Vec3{2, 0.5, 0.5}, 0, 1)
	if len(recs) != 2 {
		tst.Fatalf("expected 2 crossings (enter+exit), got %d", len(recs))
	}
	if recs[0].S > recs[1].S {
		tst.Fatalf("records not ordered by s ascending")
	}
}

func Test_geometry03(tst *testing.T) {

	chk.PrintTitle("geometry03: duplicate solid IDs are a construction error")

	a := &Solid{ID: 5, Name: "a"}
	b := &Solid{ID: 5, Name: "b"}
	_, err := NewGeometry([]*Solid{a, b}, Vec3{}, Vec3{1, 1, 1})
	if err == nil {
		tst.Fatalf("expected error for duplicate solid IDs")
	}
}

func Test_currentsolids01(tst *testing.T) {

	chk.PrintTitle("currentsolids01: enter/leave round-trip")

	cs := newCurrentSolids()
	if err := cs.Enter(3); err != nil {
		tst.Fatalf("Enter failed: %v", err)
	}
	if !cs.Contains(3) || cs.Top() != 3 {
		tst.Fatalf("expected solid 3 present and active")
	}
	if err := cs.Enter(3); err == nil {
		tst.Fatalf("expected error re-entering solid 3")
	}
	if err := cs.Leave(3); err != nil {
		tst.Fatalf("Leave failed: %v", err)
	}
	if cs.Contains(3) {
		tst.Fatalf("expected solid 3 removed")
	}
	if !cs.Contains(DefaultSolidID) {
		tst.Fatalf("expected default solid still present")
	}
	if err := cs.Leave(DefaultSolidID); err == nil {
		tst.Fatalf("expected error leaving the default solid")
	}
}
