// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/cpmech/gosl/chk"

// Manager composes a set of field sources, summing their B and E
// contributions (including derivatives), per spec.md §4.2. A Manager
// is immutable after construction and safe to share read-only across
// concurrently running particle integrations (spec.md §5).
type Manager struct {
	sources []Source
}

// NewManager returns a field manager over the given sources. The
// slice is copied so later mutation by the caller has no effect.
func NewManager(sources ...Source) *Manager {
	m := &Manager{sources: make([]Source, len(sources))}
	copy(m.sources, sources)
	return m
}

// B returns the component-wise sum of every source's B tensor. An
// empty manager returns the zero tensor, per spec.md §4.2.
func (m *Manager) B(x, y, z, t float64) (BTensor, error) {
	var total BTensor
	for _, src := range m.sources {
		b, err := src.B(x, y, z, t)
		if err != nil {
			return BTensor{}, chk.Err("field manager: source %q failed at t=%g x=(%g,%g,%g): %v", src.Name(), t, x, y, z, err)
		}
		total.Add(b)
	}
	total.Finalize()
	return total, nil
}

// E returns the component-wise sum of every source's E tensor. An
// empty manager returns the zero tensor, per spec.md §4.2.
func (m *Manager) E(x, y, z, t float64) (ETensor, error) {
	var total ETensor
	for _, src := range m.sources {
		e, err := src.E(x, y, z, t)
		if err != nil {
			return ETensor{}, chk.Err("field manager: source %q failed at t=%g x=(%g,%g,%g): %v", src.Name(), t, x, y, z, err)
		}
		total.Add(e)
	}
	return total, nil
}

// Sources returns the sources held by this manager, for diagnostics.
func (m *Manager) Sources() []Source {
	return m.sources
}
