// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// EndSink, TrackSink, HitSink are the per-record-kind write targets a
// particle integration reports to, per spec.md §4.5/§6. The integrator
// knows nothing about file layout; any of these may be nil to disable
// that log entirely.
type EndSink interface {
	WriteEnd(species string, r EndRecord) error
}

type TrackSink interface {
	WriteTrack(species string, r TrackRecord) error
}

type HitSink interface {
	WriteHit(species string, r HitRecord) error
}

// FileSinks lazily opens one file per species per record kind under
// Dir, per spec.md §5 ("output file handles are lazily created on
// first write; each particle species typically uses a distinct
// file"). Safe for concurrent use only across distinct species names;
// concurrent writers to the same species/kind need external
// serialisation, as spec.md §5 requires of the driver.
type FileSinks struct {
	Dir string

	mu    sync.Mutex
	files map[string]*os.File
}

// NewFileSinks returns a sink writing files under dir.
func NewFileSinks(dir string) *FileSinks {
	return &FileSinks{Dir: dir, files: map[string]*os.File{}}
}

func (s *FileSinks) file(species, kind, header string) (*os.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := species + "." + kind
	if f, ok := s.files[key]; ok {
		return f, nil
	}
	path := filepath.Join(s.Dir, io.Sf("%s.%s.out", species, kindSuffix(kind)))
	isNew := true
	if _, err := os.Stat(path); err == nil {
		isNew = false
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, chk.Err("out: cannot open %s: %v", path, err)
	}
	if isNew {
		io.Ff(f, "%s\n", header)
	}
	s.files[key] = f
	return f, nil
}

func kindSuffix(kind string) string {
	switch kind {
	case "end":
		return "end"
	case "track":
		return "track"
	case "hit":
		return "hit"
	default:
		return kind
	}
}

var _ EndSink = (*FileSinks)(nil)
var _ TrackSink = (*FileSinks)(nil)
var _ HitSink = (*FileSinks)(nil)

func (s *FileSinks) WriteEnd(species string, r EndRecord) error {
	f, err := s.file(species, "end", EndHeader)
	if err != nil {
		return err
	}
	io.Ff(f, "%s\n", r.String())
	return nil
}

func (s *FileSinks) WriteTrack(species string, r TrackRecord) error {
	f, err := s.file(species, "track", TrackHeader)
	if err != nil {
		return err
	}
	io.Ff(f, "%s\n", r.String())
	return nil
}

func (s *FileSinks) WriteHit(species string, r HitRecord) error {
	f, err := s.file(species, "hit", HitHeader)
	if err != nil {
		return err
	}
	io.Ff(f, "%s\n", r.String())
	return nil
}

// Close closes every lazily-opened file.
func (s *FileSinks) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first error
	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
