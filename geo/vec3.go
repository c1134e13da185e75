// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo implements the geometry service: triangulated solids,
// segment/collision testing, and point-in-solid containment queries,
// per spec.md §4.3.
package geo

import "math"

// Vec3 is a Cartesian 3-vector.
type Vec3 [3]float64

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Scale returns a*s.
func Scale(a Vec3, s float64) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }

// Dot returns a.b.
func Dot(a, b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Cross returns axb.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm returns |a|.
func Norm(a Vec3) float64 { return math.Sqrt(Dot(a, a)) }

// Normalize returns a/|a|; the zero vector if |a|==0.
func Normalize(a Vec3) Vec3 {
	n := Norm(a)
	if n == 0 {
		return Vec3{}
	}
	return Scale(a, 1/n)
}

// Lerp returns a + frac*(b-a).
func Lerp(a, b Vec3, frac float64) Vec3 {
	return Add(a, Scale(Sub(b, a), frac))
}
