// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_record01(tst *testing.T) {

	chk.PrintTitle("record01: EndRecord.String column count matches EndHeader")

	r := EndRecord{
		JobNumber: 1, Particle: 2,
		TStart: 0, XStart: [3]float64{0, 0, 0}, VStart: [3]float64{1, 0, 0},
		PolStart: 1, HStart: 0, EStart: 0,
		TEnd: 1, XEnd: [3]float64{1, 0, 0}, VEnd: [3]float64{1, 0, 0},
		PolEnd: 1, HEnd: 0, EEnd: 0,
		StopID: -1, NSpinFlip: 0, ComputingTime: 0.01,
		NHit: 3, NStep: 100, TrajLength: 1.0, Hmax: 0.1,
	}
	line := r.String()
	nFields := len(strings.Fields(line))
	nHeader := len(strings.Fields(EndHeader))
	if nFields != nHeader {
		tst.Fatalf("EndRecord field count = %d, want %d (header has %d columns)", nFields, nHeader, nHeader)
	}
}

func Test_record02(tst *testing.T) {

	chk.PrintTitle("record02: TrackRecord.String column count matches TrackHeader")

	r := TrackRecord{
		Particle: 1, Pol: 1, T: 0.5,
		X: [3]float64{0, 0, 0}, V: [3]float64{1, 0, 0},
		H: 0, E: 0,
		B:  [4][4]float64{{0, 0, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		Ex: 0, Ey: 0, Ez: 0, V0: 0,
	}
	line := r.String()
	nFields := len(strings.Fields(line))
	nHeader := len(strings.Fields(TrackHeader))
	if nFields != nHeader {
		tst.Fatalf("TrackRecord field count = %d, want %d (header has %d columns)", nFields, nHeader, nHeader)
	}
}

func Test_record03(tst *testing.T) {

	chk.PrintTitle("record03: HitRecord.String column count matches HitHeader")

	r := HitRecord{
		JobNumber: 1, Particle: 2, T: 0.5,
		X: [3]float64{0, 0, 0}, V1: [3]float64{1, 0, 0}, Pol1: 1,
		V2: [3]float64{-1, 0, 0}, Pol2: 1,
		Normal: [3]float64{1, 0, 0}, LeavingID: 1, EnteringID: 0,
	}
	line := r.String()
	nFields := len(strings.Fields(line))
	nHeader := len(strings.Fields(HitHeader))
	if nFields != nHeader {
		tst.Fatalf("HitRecord field count = %d, want %d (header has %d columns)", nFields, nHeader, nHeader)
	}
}
