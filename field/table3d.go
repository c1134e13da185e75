// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math"

// Table3D is a field table on a regular (x,y,z) cuboid grid,
// interpolated with a tricubic (Catmull-Rom tensor-product) spline,
// per spec.md §4.1. Within a configurable boundary width inside each
// face, the field and its derivatives are smoothly tapered to zero at
// the face; evaluations outside the grid return zero (BoundaryWidth==0
// disables tapering).
type Table3D struct {
	ID string

	XMin, YMin, ZMin float64
	DX, DY, DZ       float64
	Nx, Ny, Nz       int

	// grid[name][i][j][k]
	grid map[string][][][]float64

	hasV bool

	BoundaryWidth float64
	Envelope      Envelope
	Escale        float64
}

var _ Source = (*Table3D)(nil)

// NewTable3D parses a whitespace-separated (x,y,z) cuboid table file.
func NewTable3D(id, path string, units UnitConversion, boundaryWidth float64) (*Table3D, error) {
	gf, err := parseGridFile(path)
	if err != nil {
		return nil, err
	}
	xcol, ok := gf.Cols["X"]
	if !ok {
		return nil, errMissingColumn(path, "X")
	}
	ycol, ok := gf.Cols["Y"]
	if !ok {
		return nil, errMissingColumn(path, "Y")
	}
	zcol, ok := gf.Cols["Z"]
	if !ok {
		return nil, errMissingColumn(path, "Z")
	}
	xmin, dx, nx, err := uniqueSortedUniform(path, "X", xcol)
	if err != nil {
		return nil, err
	}
	ymin, dy, ny, err := uniqueSortedUniform(path, "Y", ycol)
	if err != nil {
		return nil, err
	}
	zmin, dz, nz, err := uniqueSortedUniform(path, "Z", zcol)
	if err != nil {
		return nil, err
	}

	t := &Table3D{
		ID: id, XMin: xmin, YMin: ymin, ZMin: zmin,
		DX: dx, DY: dy, DZ: dz, Nx: nx, Ny: ny, Nz: nz,
		grid: map[string][][][]float64{}, BoundaryWidth: boundaryWidth,
	}
	_, hasV := gf.Cols["V"]
	t.hasV = hasV

	names := []string{"BX", "BY", "BZ"}
	if hasV {
		names = append(names, "V")
	}
	for _, name := range names {
		col, present := gf.Cols[name]
		if !present {
			continue
		}
		g := make([][][]float64, nx)
		for i := range g {
			g[i] = make([][]float64, ny)
			for j := range g[i] {
				g[i][j] = make([]float64, nz)
			}
		}
		for k := 0; k < gf.N; k++ {
			i := int(math.Round((xcol[k] - xmin) / dx))
			j := int(math.Round((ycol[k] - ymin) / dy))
			l := int(math.Round((zcol[k] - zmin) / dz))
			scale := 1.0
			if name[0] == 'B' {
				scale = units.B
			}
			g[i][j][l] = col[k] * scale
		}
		t.grid[name] = g
	}
	return t, nil
}

// inBounds reports whether (x,y,z) falls within the tabulated cuboid.
func (t *Table3D) inBounds(x, y, z float64) bool {
	xmax := t.XMin + t.DX*float64(t.Nx-1)
	ymax := t.YMin + t.DY*float64(t.Ny-1)
	zmax := t.ZMin + t.DZ*float64(t.Nz-1)
	return x >= t.XMin && x <= xmax && y >= t.YMin && y <= ymax && z >= t.ZMin && z <= zmax
}

// sample evaluates a scalar component at (x,y,z), returning the value
// and partials ∂/∂x, ∂/∂y, ∂/∂z via three successive 1-D Catmull-Rom
// passes (z, then y, then x).
func (t *Table3D) sample(name string, x, y, z float64) (val, dx, dy, dz float64) {
	g, ok := t.grid[name]
	if !ok {
		return 0, 0, 0, 0
	}
	i0, u := cellIndex(x, t.XMin, t.DX, t.Nx)
	j0, v := cellIndex(y, t.YMin, t.DY, t.Ny)
	k0, w := cellIndex(z, t.ZMin, t.DZ, t.Nz)

	var planeVal, planeDz [4]float64
	var lineVal, lineDz, lineDy [4]float64
	for a := -1; a <= 2; a++ {
		ii := clampIndex(i0+a, t.Nx)
		for b := -1; b <= 2; b++ {
			jj := clampIndex(j0+b, t.Ny)
			p0 := g[ii][jj][clampIndex(k0-1, t.Nz)]
			p1 := g[ii][jj][clampIndex(k0, t.Nz)]
			p2 := g[ii][jj][clampIndex(k0+1, t.Nz)]
			p3 := g[ii][jj][clampIndex(k0+2, t.Nz)]
			val, d := catmullRom(p0, p1, p2, p3, w)
			planeVal[b+1] = val
			planeDz[b+1] = d / t.DZ
		}
		v0, dv0 := catmullRom(planeVal[0], planeVal[1], planeVal[2], planeVal[3], v)
		_, ddv0 := catmullRom(planeDz[0], planeDz[1], planeDz[2], planeDz[3], v)
		lineVal[a+1] = v0
		lineDy[a+1] = dv0 / t.DY
		lineDz[a+1] = ddv0
	}
	val, du := catmullRom(lineVal[0], lineVal[1], lineVal[2], lineVal[3], u)
	_, ddy := catmullRom(lineDy[0], lineDy[1], lineDy[2], lineDy[3], u)
	_, ddz := catmullRom(lineDz[0], lineDz[1], lineDz[2], lineDz[3], u)
	dx = du / t.DX
	dy = ddy
	dz = ddz
	return
}

// smoothBoundary returns the taper factor S and its spatial gradient
// (dS/dx, dS/dy, dS/dz) at point p, per spec.md §4.1: within
// BoundaryWidth inside the cuboid's nearest face, the field and its
// derivatives are multiplied by a smooth Hermite step that reaches
// zero at the face and stays zero outside the cuboid.
// Returns (1, 0) when BoundaryWidth<=0 or p is deep inside the cuboid.
func (t *Table3D) smoothBoundary(x, y, z float64) (s, dsdx, dsdy, dsdz float64) {
	if t.BoundaryWidth <= 0 {
		return 1, 0, 0, 0
	}
	w := t.BoundaryWidth
	xmax := t.XMin + t.DX*float64(t.Nx-1)
	ymax := t.YMin + t.DY*float64(t.Ny-1)
	zmax := t.ZMin + t.DZ*float64(t.Nz-1)

	// dlo/dhi are the distances to the lower/upper face; the distance
	// to the upper face decreases with the coordinate, hence sign.
	faceFactor := func(dlo, dhi float64) (f, df float64) {
		dist, sign := dlo, 1.0
		if dhi < dlo {
			dist, sign = dhi, -1.0
		}
		u := dist / w
		if u >= 1 {
			return 1, 0
		}
		if u <= 0 {
			return 0, 0
		}
		f = u * u * (3 - 2*u)
		df = sign * (6*u - 6*u*u) / w
		return
	}
	fx, dfx := faceFactor(x-t.XMin, xmax-x)
	fy, dfy := faceFactor(y-t.YMin, ymax-y)
	fz, dfz := faceFactor(z-t.ZMin, zmax-z)
	s = fx * fy * fz
	dsdx = dfx * fy * fz
	dsdy = fx * dfy * fz
	dsdz = fx * fy * dfz
	return
}

// Name implements Source.
func (t *Table3D) Name() string { return t.ID }

// B implements Source. Outside the tabulated cuboid (beyond any
// boundary smoothing), B and its derivatives are exactly zero, per
// spec.md §4.1 and the property test in spec.md §8.
func (t *Table3D) B(x, y, z, tm float64) (BTensor, error) {
	if !t.withinTaperedRange(x, y, z) {
		return BTensor{}, nil
	}
	sigma := t.Envelope.Scale(tm)
	bx, dbxdx, dbxdy, dbxdz := t.sample("BX", x, y, z)
	by, dbydx, dbydy, dbydz := t.sample("BY", x, y, z)
	bz, dbzdx, dbzdy, dbzdz := t.sample("BZ", x, y, z)

	s, dsdx, dsdy, dsdz := t.smoothBoundary(x, y, z)

	var T BTensor
	T[0][0] = sigma * s * bx
	T[0][1] = sigma * s * by
	T[0][2] = sigma * s * bz

	T[1][0] = sigma * (dsdx*bx + s*dbxdx)
	T[1][1] = sigma * (dsdx*by + s*dbydx)
	T[1][2] = sigma * (dsdx*bz + s*dbzdx)

	T[2][0] = sigma * (dsdy*bx + s*dbxdy)
	T[2][1] = sigma * (dsdy*by + s*dbydy)
	T[2][2] = sigma * (dsdy*bz + s*dbzdy)

	T[3][0] = sigma * (dsdz*bx + s*dbxdz)
	T[3][1] = sigma * (dsdz*by + s*dbydz)
	T[3][2] = sigma * (dsdz*bz + s*dbzdz)
	T.Finalize()
	return T, nil
}

// withinTaperedRange reports whether (x,y,z) is inside the cuboid
// expanded by the boundary width (outside that, the field is exactly
// zero by construction).
func (t *Table3D) withinTaperedRange(x, y, z float64) bool {
	if t.BoundaryWidth <= 0 {
		return t.inBounds(x, y, z)
	}
	w := t.BoundaryWidth
	xmax := t.XMin + t.DX*float64(t.Nx-1)
	ymax := t.YMin + t.DY*float64(t.Ny-1)
	zmax := t.ZMin + t.DZ*float64(t.Nz-1)
	return x >= t.XMin-w && x <= xmax+w && y >= t.YMin-w && y <= ymax+w && z >= t.ZMin-w && z <= zmax+w
}

// E implements Source: E is derived from V by differentiation, as a
// tabulated 3-D potential; dEidxj (second derivative) is not computed
// and D is returned as zero, per DESIGN.md open question (a).
func (t *Table3D) E(x, y, z, tm float64) (ETensor, error) {
	var T ETensor
	if !t.hasV || !t.withinTaperedRange(x, y, z) {
		return T, nil
	}
	v, dvdx, dvdy, dvdz := t.sample("V", x, y, z)
	s, _, _, _ := t.smoothBoundary(x, y, z)
	T.V = t.Escale * s * v
	T.E[0] = -t.Escale * s * dvdx
	T.E[1] = -t.Escale * s * dvdy
	T.E[2] = -t.Escale * s * dvdz
	return T, nil
}
