// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sinks01(tst *testing.T) {

	chk.PrintTitle("sinks01: FileSinks writes the header once and appends records after")

	dir := tst.TempDir()
	s := NewFileSinks(dir)
	defer s.Close()

	r1 := EndRecord{JobNumber: 1, Particle: 1, StopID: -1}
	r2 := EndRecord{JobNumber: 1, Particle: 2, StopID: -2}

	if err := s.WriteEnd("neutron", r1); err != nil {
		tst.Fatalf("WriteEnd failed: %v", err)
	}
	if err := s.WriteEnd("neutron", r2); err != nil {
		tst.Fatalf("WriteEnd failed: %v", err)
	}
	s.Close()

	path := filepath.Join(dir, "neutron.end.out")
	data, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("ReadFile failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		tst.Fatalf("got %d lines, want 3 (header + 2 records)", len(lines))
	}
	if lines[0] != EndHeader {
		tst.Fatalf("first line = %q, want header", lines[0])
	}
}

func Test_sinks02(tst *testing.T) {

	chk.PrintTitle("sinks02: FileSinks separates species into distinct files")

	dir := tst.TempDir()
	s := NewFileSinks(dir)
	defer s.Close()

	if err := s.WriteEnd("neutron", EndRecord{Particle: 1}); err != nil {
		tst.Fatalf("WriteEnd neutron failed: %v", err)
	}
	if err := s.WriteEnd("electron", EndRecord{Particle: 1}); err != nil {
		tst.Fatalf("WriteEnd electron failed: %v", err)
	}
	s.Close()

	for _, species := range []string{"neutron", "electron"} {
		path := filepath.Join(dir, species+".end.out")
		if _, err := os.Stat(path); err != nil {
			tst.Fatalf("expected %s to exist: %v", path, err)
		}
	}
}

func Test_sinks03(tst *testing.T) {

	chk.PrintTitle("sinks03: reopening FileSinks on an existing file does not duplicate the header")

	dir := tst.TempDir()
	s1 := NewFileSinks(dir)
	if err := s1.WriteEnd("neutron", EndRecord{Particle: 1}); err != nil {
		tst.Fatalf("WriteEnd failed: %v", err)
	}
	s1.Close()

	s2 := NewFileSinks(dir)
	if err := s2.WriteEnd("neutron", EndRecord{Particle: 2}); err != nil {
		tst.Fatalf("WriteEnd failed: %v", err)
	}
	s2.Close()

	data, err := os.ReadFile(filepath.Join(dir, "neutron.end.out"))
	if err != nil {
		tst.Fatalf("ReadFile failed: %v", err)
	}
	n := strings.Count(string(data), EndHeader)
	if n != 1 {
		tst.Fatalf("header appears %d times, want 1", n)
	}
}
