// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_manager01(tst *testing.T) {

	chk.PrintTitle("manager01: empty manager returns zero field")

	m := NewManager()
	b, err := m.B(1, 2, 3, 0)
	if err != nil {
		tst.Fatalf("B failed: %v", err)
	}
	if b != (BTensor{}) {
		tst.Fatalf("expected zero tensor, got %v", b)
	}
	e, err := m.E(1, 2, 3, 0)
	if err != nil {
		tst.Fatalf("E failed: %v", err)
	}
	if e != (ETensor{}) {
		tst.Fatalf("expected zero tensor, got %v", e)
	}
}

func Test_manager02(tst *testing.T) {

	chk.PrintTitle("manager02: sum of two analytic sources")

	a := &Analytic{ID: "a", Kind: LinearGradZ, B0: 1, Grad: 0.1, Envelope: Constant()}
	b := &Analytic{ID: "b", Kind: LinearGradZ, B0: 2, Grad: 0.2, Envelope: Constant()}
	m := NewManager(a, b)

	got, err := m.B(0, 0, 1, 0.5)
	if err != nil {
		tst.Fatalf("B failed: %v", err)
	}
	wantBz := (1 + 0.1*1) + (2 + 0.2*1)
	if math.Abs(got.B3()[2]-wantBz) > 1e-12 {
		tst.Fatalf("Bz sum mismatch: got %g want %g", got.B3()[2], wantBz)
	}
	wantDz := 0.1 + 0.2
	if math.Abs(got[3][2]-wantDz) > 1e-12 {
		tst.Fatalf("dBz/dz sum mismatch: got %g want %g", got[3][2], wantDz)
	}
}
