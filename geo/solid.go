// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

// DefaultSolidID is the ID of the default solid: "vacuum filling the
// world". It has no mesh and is always present in the current-solid
// set, per spec.md §3.
const DefaultSolidID = 1

// TimeInterval is a half-open [Start, End) window of time, used for a
// solid's "ignore" intervals (spec.md Glossary: transparent shutters).
type TimeInterval struct {
	Start, End float64
}

// Contains reports whether t falls in [Start, End).
func (iv TimeInterval) Contains(t float64) bool {
	return t >= iv.Start && t < iv.End
}

// Solid is a named, prioritised (by ID) region of space bounded by a
// triangle mesh, with an associated material and a list of time
// windows during which it is transparent, per spec.md §3.
//
// Input fields carry json tags in the teacher's inp.Material style
// (see DESIGN.md) purely so tests and example fixtures can be built
// from small literal JSON blobs; full geometry-file parsing is out of
// scope.
type Solid struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	MaterialName string         `json:"material"`
	Ignore       []TimeInterval `json:"ignore"`

	Mesh Mesh // nil for the default solid
}

// IsIgnoredAt reports whether this solid is transparent at time t.
func (s *Solid) IsIgnoredAt(t float64) bool {
	for _, iv := range s.Ignore {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// NewDefaultSolid returns the world-filling default solid (ID=1, no
// mesh), per spec.md §3.
func NewDefaultSolid() *Solid {
	return &Solid{ID: DefaultSolidID, Name: "default", MaterialName: "vacuum"}
}

// CollisionRecord is one segment/solid crossing: the parametric
// fraction s in [0,1] along the tested segment, the solid crossed,
// its outward unit normal, and whether the crossing falls inside one
// of the solid's ignore intervals, per spec.md §3/§4.3.
//
// The Ignored flag is computed by the geometry service but left for
// downstream hit-handlers to consult (DESIGN.md open question d); the
// core collision resolver in package sim does not itself act on it.
type CollisionRecord struct {
	S       float64
	SolidID int
	Normal  Vec3
	Ignored bool
}
