// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// catmullRom evaluates a 1-D Catmull-Rom cubic through four equally
// spaced samples p0,p1,p2,p3 (at parameter -1,0,1,2) at local
// parameter u in [0,1], the segment between p1 and p2. It returns the
// value and its derivative with respect to u; callers convert the
// derivative to a physical-distance derivative by dividing by the grid
// spacing (chain rule, u = (r-r_i)/Δr).
//
// This is the interpolation kernel shared by the bicubic (2-D
// axisymmetric) and tricubic (3-D) tables: each axis is interpolated
// independently with this kernel, giving a C¹ tensor-product spline
// without needing to solve the larger coefficient systems a
// finite-element-style bicubic/tricubic fit would require.
func catmullRom(p0, p1, p2, p3, u float64) (val, deriv float64) {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2*p0 - 5*p1 + 4*p2 - p3
	c := -p0 + p2
	d := 2 * p1
	val = 0.5 * (a*u*u*u + b*u*u + c*u + d)
	deriv = 0.5 * (3*a*u*u + 2*b*u + c)
	return
}

// clampIndex clamps i to [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// cellIndex returns the lower grid index i0 such that x falls in
// [grid[i0], grid[i0+1]] for a uniform grid starting at x0 with
// spacing dx and n points, plus the local fraction u in [0,1].
// Points outside the grid are clamped to the boundary cell (callers
// decide whether that should instead be treated as "outside", e.g.
// Table3D's boundary smoothing).
func cellIndex(x, x0, dx float64, n int) (i0 int, u float64) {
	if dx == 0 || n < 2 {
		return 0, 0
	}
	f := (x - x0) / dx
	i0 = int(f)
	if float64(i0) > f {
		i0--
	}
	u = f - float64(i0)
	if i0 < 0 {
		i0, u = 0, 0
	}
	if i0 > n-2 {
		i0, u = n-2, 1
	}
	return
}
