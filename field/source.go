// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements electromagnetic field sources (analytic
// formulas and gridded bicubic/tricubic tables) and the field manager
// that composes them into a single B/E evaluator.
package field

import "math"

// BTensor holds a B field sample and its first spatial derivatives, a
// 4x4 arrangement: row 0 is (Bx,By,Bz,|B|), and row 1+j holds the
// derivatives of those four along x_j (j=x,y,z), so d|B|/dxj is in
// column 3 of rows 1-3.
//
// Layout follows the source's Bx,dBxdx,dBxdy,dBxdz / ... tensor, here
// flattened to [4][4]float64 with the convention:
//
//	T[0] = {Bx, By, Bz, |B|}
//	T[1] = {dBx/dx, dBy/dx, dBz/dx, d|B|/dx}
//	T[2] = {dBx/dy, dBy/dy, dBz/dy, d|B|/dy}
//	T[3] = {dBx/dz, dBy/dz, dBz/dz, d|B|/dz}
type BTensor [4][4]float64

// Add accumulates o into T component-wise.
func (t *BTensor) Add(o BTensor) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] += o[i][j]
		}
	}
}

// B3 returns the B vector itself (row 0, cols 0-2).
func (t BTensor) B3() [3]float64 {
	return [3]float64{t[0][0], t[0][1], t[0][2]}
}

// Bmag returns |B| (row 0, col 3).
func (t BTensor) Bmag() float64 { return t[0][3] }

// Finalize (re)computes |B| and its gradient (column 3) from the B
// vector and its derivatives already present in columns 0-2. |B| does
// not superpose linearly across sources, so column 3 must be derived
// from the final summed field rather than summed itself; callers
// recompute it with Finalize after summing raw components (see
// Manager.B), and individual sources call it once after filling their
// own columns 0-2.
func (t *BTensor) Finalize() {
	bx, by, bz := t[0][0], t[0][1], t[0][2]
	mag := math.Sqrt(bx*bx + by*by + bz*bz)
	t[0][3] = mag
	if mag == 0 {
		t[1][3], t[2][3], t[3][3] = 0, 0, 0
		return
	}
	t[1][3] = (bx*t[1][0] + by*t[1][1] + bz*t[1][2]) / mag
	t[2][3] = (bx*t[2][0] + by*t[2][1] + bz*t[2][2]) / mag
	t[3][3] = (bx*t[3][0] + by*t[3][1] + bz*t[3][2]) / mag
}

// ETensor holds an E field sample: the scalar potential V, the E
// vector, and the 3x3 tensor of spatial derivatives dEi/dxj.
type ETensor struct {
	V float64
	E [3]float64
	D [3][3]float64 // D[i][j] = dE_i/dx_j
}

// Add accumulates o into T component-wise.
func (t *ETensor) Add(o ETensor) {
	t.V += o.V
	for i := 0; i < 3; i++ {
		t.E[i] += o.E[i]
		for j := 0; j < 3; j++ {
			t.D[i][j] += o.D[i][j]
		}
	}
}

// Source is a single field contributor: an analytic formula or a
// gridded table. Implementations must be safe for concurrent read-only
// use once constructed (see spec.md §5).
type Source interface {
	// B returns the magnetic field tensor at (x,y,z,t).
	B(x, y, z, t float64) (BTensor, error)

	// E returns the electric potential/field/derivative tensor at
	// (x,y,z,t). The derivative slot D (dEi/dxj) is returned as zero
	// by sources that do not compute it (see Table2D.E and DESIGN.md
	// open question (a)).
	E(x, y, z, t float64) (ETensor, error)

	// Name identifies the source for diagnostics.
	Name() string
}
