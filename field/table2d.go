// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Table2D is an axisymmetric field table on a regular (r,z) grid,
// interpolated with a bicubic (Catmull-Rom tensor-product) spline and
// rotated back into Cartesian coordinates, per spec.md §4.1.
type Table2D struct {
	ID string

	RMin, ZMin float64
	DR, DZ     float64
	M, N       int // grid points along r, z

	// grid[name][i][j], i in [0,M), j in [0,N)
	grid map[string][][]float64

	hasV bool

	Envelope Envelope
	Escale   float64
}

var _ Source = (*Table2D)(nil)

// NewTable2D parses a whitespace-separated (r,z) table file and
// precomputes the interpolation grid. If a V column is present, E is
// derived from its gradient and any supplied E columns are ignored,
// per spec.md §4.1.
func NewTable2D(id, path string, units UnitConversion) (*Table2D, error) {
	gf, err := parseGridFile(path)
	if err != nil {
		return nil, err
	}
	rcol, ok := gf.Cols["R"]
	if !ok {
		return nil, errMissingColumn(path, "R")
	}
	zcol, ok := gf.Cols["Z"]
	if !ok {
		return nil, errMissingColumn(path, "Z")
	}
	rmin, dr, m, err := uniqueSortedUniform(path, "R", rcol)
	if err != nil {
		return nil, err
	}
	zmin, dz, n, err := uniqueSortedUniform(path, "Z", zcol)
	if err != nil {
		return nil, err
	}

	t := &Table2D{ID: id, RMin: rmin, ZMin: zmin, DR: dr, DZ: dz, M: m, N: n, grid: map[string][][]float64{}}
	_, hasV := gf.Cols["V"]
	t.hasV = hasV

	names := []string{"BX", "BY", "BZ"}
	if hasV {
		names = append(names, "V")
	} else {
		names = append(names, "EX", "EY", "EZ")
	}
	for _, name := range names {
		col, present := gf.Cols[name]
		if !present {
			continue
		}
		g := make([][]float64, m)
		for i := range g {
			g[i] = make([]float64, n)
		}
		for k := 0; k < gf.N; k++ {
			i := int(math.Round((rcol[k] - rmin) / dr))
			j := int(math.Round((zcol[k] - zmin) / dz))
			scale := 1.0
			switch name[0] {
			case 'B':
				scale = units.B
			case 'E':
				scale = units.E
			}
			g[i][j] = col[k] * scale
		}
		t.grid[name] = g
	}
	return t, nil
}

func errMissingColumn(path, name string) error {
	return chk.Err("field: grid file %q: missing required column %q", path, name)
}

// sample evaluates a scalar field component grid at (r,z), returning
// the value and partials ∂/∂r, ∂/∂z. Points outside the grid clamp to
// the boundary spline, per spec.md §4.1.
func (t *Table2D) sample(name string, r, z float64) (val, dr, dz float64) {
	g, ok := t.grid[name]
	if !ok {
		return 0, 0, 0
	}
	i0, u := cellIndex(r, t.RMin, t.DR, t.M)
	j0, v := cellIndex(z, t.ZMin, t.DZ, t.N)

	// interpolate along z for the 4 bracketing r-lines, then along r
	var vals [4]float64
	var dzs [4]float64
	for k := -1; k <= 2; k++ {
		ii := clampIndex(i0+k, t.M)
		p0 := g[ii][clampIndex(j0-1, t.N)]
		p1 := g[ii][clampIndex(j0, t.N)]
		p2 := g[ii][clampIndex(j0+1, t.N)]
		p3 := g[ii][clampIndex(j0+2, t.N)]
		val, d := catmullRom(p0, p1, p2, p3, v)
		vals[k+1] = val
		dzs[k+1] = d / t.DZ
	}
	val, du := catmullRom(vals[0], vals[1], vals[2], vals[3], u)
	_, ddu := catmullRom(dzs[0], dzs[1], dzs[2], dzs[3], u)
	dr = du / t.DR
	dz = ddu
	return val, dr, dz
}

// Name implements Source.
func (t *Table2D) Name() string { return t.ID }

// B implements Source: evaluates the bicubic splines at (r,z) and
// rotates (Br, Bphi, Bz) back into Cartesian using φ = atan2(y,x), per
// spec.md §4.1. A BY column, if present, is loaded but not used:
// Bphi is always taken as zero here.
func (t *Table2D) B(x, y, z, tm float64) (BTensor, error) {
	r := math.Hypot(x, y)
	sigma := t.Envelope.Scale(tm)
	var T BTensor
	if r < 1e-12 {
		// axis: Br undefined by symmetry, Bz still well defined
		bz, _, dbzdz := t.sample("BZ", 0, z)
		T[0][2] = sigma * bz
		T[3][2] = sigma * dbzdz
		T.Finalize()
		return T, nil
	}
	cphi, sphi := x/r, y/r
	br, dbrdr, dbrdz := t.sample("BX", r, z) // BX column in an axisymmetric table holds Br
	bz, dbzdr, dbzdz := t.sample("BZ", r, z)

	bx := br * cphi
	by := br * sphi
	T[0][0], T[0][1], T[0][2] = sigma*bx, sigma*by, sigma*bz

	// ∂/∂x = cphi ∂/∂r - (sphi/r) ∂/∂phi ; the ∂/∂phi of cphi, sphi in
	// Bx = Br·cphi, By = Br·sphi gives the Br/r terms
	T[1][0] = sigma * (cphi*cphi*dbrdr + sphi*sphi*br/r)
	T[1][1] = sigma * cphi * sphi * (dbrdr - br/r)
	T[1][2] = sigma * cphi * dbzdr
	T[2][0] = sigma * cphi * sphi * (dbrdr - br/r)
	T[2][1] = sigma * (sphi*sphi*dbrdr + cphi*cphi*br/r)
	T[2][2] = sigma * sphi * dbzdr
	T[3][0] = sigma * cphi * dbrdz
	T[3][1] = sigma * sphi * dbrdz
	T[3][2] = sigma * dbzdz
	T.Finalize()
	return T, nil
}

// E implements Source. If the table carries a V column, E is derived
// by differentiating V; otherwise the EX/EY/EZ columns (here
// EX==E_r, EZ as supplied) are used directly. dEidxj (the second
// spatial derivative) is not computed and D is returned as zero; see
// DESIGN.md open question (a).
func (t *Table2D) E(x, y, z, tm float64) (ETensor, error) {
	r := math.Hypot(x, y)
	var T ETensor
	if t.hasV {
		v, dvdr, dvdz := t.sample("V", r, z)
		T.V = t.Escale * v
		if r > 1e-12 {
			cphi, sphi := x/r, y/r
			T.E[0] = -t.Escale * dvdr * cphi
			T.E[1] = -t.Escale * dvdr * sphi
		}
		T.E[2] = -t.Escale * dvdz
		return T, nil
	}
	er, _, _ := t.sample("EX", r, z)
	ez, _, _ := t.sample("EZ", r, z)
	if r > 1e-12 {
		cphi, sphi := x/r, y/r
		T.E[0] = t.Escale * er * cphi
		T.E[1] = t.Escale * er * sphi
	}
	T.E[2] = t.Escale * ez
	return T, nil
}
