// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fixtures01(tst *testing.T) {

	chk.PrintTitle("fixtures01: embedded material fixtures parse")

	mats, err := Fixtures()
	if err != nil {
		tst.Fatalf("Fixtures failed: %v", err)
	}
	steel, ok := mats["stainless_steel"]
	if !ok {
		tst.Fatalf("expected stainless_steel fixture")
	}
	if steel.FermiReal <= 0 {
		tst.Fatalf("expected positive FermiReal, got %g", steel.FermiReal)
	}
	if steel.Name != "stainless_steel" {
		tst.Fatalf("expected Name to be set from map key, got %q", steel.Name)
	}
}
