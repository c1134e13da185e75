// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// UnitConversion holds the per-file overridable unit multipliers of
// spec.md §6: length cm->m, B Gauss->Tesla, E V/cm->V/m. The tables
// apply B to the BX/BY/BZ columns when loading; Length is not
// applied, so grid coordinates are used as read.
type UnitConversion struct {
	Length float64
	B      float64
	E      float64
}

// DefaultUnits returns the documented defaults.
func DefaultUnits() UnitConversion {
	return UnitConversion{Length: 0.01, B: 1e-4, E: 100}
}

// gridFile is the parsed, not yet unit-converted contents of a
// whitespace-separated field table file: one column per recognised
// name, all of equal length.
type gridFile struct {
	Cols map[string][]float64
	N    int // number of rows
}

// recognised column names, per spec.md §6.
var gridColumnNames = map[string]bool{
	"X": true, "Y": true, "Z": true, "R": true,
	"BX": true, "BY": true, "BZ": true,
	"EX": true, "EY": true, "EZ": true,
	"V": true,
}

// parseGridFile reads a whitespace-separated table with a header row
// naming the columns (case-insensitive), per spec.md §6. It rejects
// files with NaNs, ragged rows, or unrecognised columns.
func parseGridFile(path string) (*gridFile, error) {
	lines, err := io.ReadLines(path)
	if err != nil {
		return nil, chk.Err("field: cannot read grid file %q: %v", path, err)
	}
	var header []string
	gf := &gridFile{Cols: map[string][]float64{}}
	row := 0
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if header == nil {
			header = make([]string, len(fields))
			for i, f := range fields {
				name := strings.ToUpper(f)
				if !gridColumnNames[name] {
					return nil, chk.Err("field: grid file %q: unrecognised column %q", path, f)
				}
				header[i] = name
				gf.Cols[name] = []float64{}
			}
			continue
		}
		if len(fields) != len(header) {
			return nil, chk.Err("field: grid file %q: row %d has %d columns, expected %d", path, row, len(fields), len(header))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || floats.HasNaN([]float64{v}) {
				return nil, chk.Err("field: grid file %q: row %d column %q is not a finite number: %q", path, row, header[i], f)
			}
			gf.Cols[header[i]] = append(gf.Cols[header[i]], v)
		}
		row++
	}
	if header == nil || row == 0 {
		return nil, chk.Err("field: grid file %q: no data rows", path)
	}
	gf.N = row
	return gf, nil
}

// uniqueSortedUniform extracts the sorted set of unique values in col
// and verifies it forms a monotone, uniformly spaced grid. It returns
// the grid (min, step, count) or an error.
func uniqueSortedUniform(path, name string, col []float64) (min, step float64, n int, err error) {
	seen := map[float64]bool{}
	var vals []float64
	for _, v := range col {
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	if !floats.IsSorted(vals) {
		sortFloats(vals)
	}
	if len(vals) < 2 {
		return 0, 0, 0, chk.Err("field: grid file %q: column %q does not span a range", path, name)
	}
	step = vals[1] - vals[0]
	if step <= 0 {
		return 0, 0, 0, chk.Err("field: grid file %q: column %q is not monotone increasing", path, name)
	}
	tol := step * 1e-6
	for i := 1; i < len(vals); i++ {
		d := vals[i] - vals[i-1]
		if d <= 0 || abs(d-step) > tol {
			return 0, 0, 0, chk.Err("field: grid file %q: column %q is not a uniform grid (step %g at index %d vs %g)", path, name, d, i, step)
		}
	}
	return vals[0], step, len(vals), nil
}

func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
