// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_envelope01(tst *testing.T) {

	chk.PrintTitle("envelope01: piecewise shape and continuity")

	e := Envelope{NullFieldTime: 1, RampUpTime: 2, FullFieldTime: 3, RampDownTime: 2, Shape: SmoothStep}

	cases := []struct{ t, want float64 }{
		{0, 0}, {1, 0}, {3, 1}, {4, 1}, {6, 1}, {7, 0.5}, {8, 0},
	}
	for _, c := range cases {
		got := e.Scale(c.t)
		if math.Abs(got-c.want) > 1e-9 {
			tst.Fatalf("Scale(%g) = %g, want %g", c.t, got, c.want)
		}
	}

	// continuity: sample densely around every boundary
	boundaries := []float64{1, 3, 6, 8}
	for _, b := range boundaries {
		left := e.Scale(b - 1e-6)
		right := e.Scale(b + 1e-6)
		if math.Abs(left-right) > 1e-3 {
			tst.Fatalf("discontinuity at t=%g: left=%g right=%g", b, left, right)
		}
	}
}

func Test_envelope02(tst *testing.T) {

	chk.PrintTitle("envelope02: smooth-step has zero derivative at ramp ends")

	const h = 1e-6
	for _, u := range []float64{0, 1} {
		s0 := smoothStep(u - h)
		s1 := smoothStep(u + h)
		slope := (s1 - s0) / (2 * h)
		if math.Abs(slope) > 1e-2 {
			tst.Fatalf("smoothStep'(%g) = %g, want ~0", u, slope)
		}
	}
}
