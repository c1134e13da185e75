// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeUniformCuboidTable(tst *testing.T, dir string) string {
	path := filepath.Join(dir, "cuboid.table")
	f, err := os.Create(path)
	if err != nil {
		tst.Fatalf("create: %v", err)
	}
	defer f.Close()
	fmt.Fprintln(f, "X Y Z BX BY BZ")
	for _, x := range []float64{0, 1, 2, 3} {
		for _, y := range []float64{0, 1, 2, 3} {
			for _, z := range []float64{0, 1, 2, 3} {
				fmt.Fprintf(f, "%g %g %g %g %g %g\n", x, y, z, 0.0, 0.0, 1e4)
			}
		}
	}
	return path
}

func Test_table3d01(tst *testing.T) {

	chk.PrintTitle("table3d01: zero outside boundary-smoothed cuboid")

	dir := tst.TempDir()
	path := writeUniformCuboidTable(tst, dir)
	table, err := NewTable3D("cuboid", path, DefaultUnits(), 0.5)
	if err != nil {
		tst.Fatalf("NewTable3D failed: %v", err)
	}
	table.Envelope = Constant()

	// inside: full 1T field
	b, _ := table.B(1.5, 1.5, 1.5, 0)
	if math.Abs(b.B3()[2]-1) > 1e-6 {
		tst.Fatalf("interior Bz=%g, want 1", b.B3()[2])
	}

	// further than boundary width outside the cuboid: exactly zero
	b, _ = table.B(-1, 1.5, 1.5, 0)
	if b != (BTensor{}) {
		tst.Fatalf("expected exact zero tensor outside taper, got %v", b)
	}

	// within the boundary width inside the face: tapered, strictly
	// between 0 and 1
	b, _ = table.B(0.2, 1.5, 1.5, 0)
	if b.B3()[2] <= 0 || b.B3()[2] >= 1 {
		tst.Fatalf("expected tapered Bz in (0,1), got %g", b.B3()[2])
	}
}
