// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Geometry is the triangulated world: a set of solids with unique IDs
// (used as overlap priority) plus a world bounding box, per spec.md
// §3/§4.3. A Geometry is immutable after construction and safe to
// share read-only across concurrently running particle integrations.
type Geometry struct {
	byID       map[int]*Solid
	ordered    []*Solid // sorted by ID ascending
	worldMin   Vec3
	worldMax   Vec3
}

// NewGeometry validates and builds a Geometry from a set of solids.
// The default solid (ID=1) is added automatically if not present.
// Duplicate solid IDs are a construction-time error, per spec.md §7
// ("geometry-definition errors ... abort the run").
func NewGeometry(solids []*Solid, worldMin, worldMax Vec3) (*Geometry, error) {
	g := &Geometry{byID: map[int]*Solid{}, worldMin: worldMin, worldMax: worldMax}
	hasDefault := false
	for _, s := range solids {
		if _, dup := g.byID[s.ID]; dup {
			return nil, chk.Err("geo: duplicate solid ID %d (%q)", s.ID, s.Name)
		}
		g.byID[s.ID] = s
		if s.ID == DefaultSolidID {
			hasDefault = true
		}
	}
	if !hasDefault {
		def := NewDefaultSolid()
		g.byID[def.ID] = def
	}
	for _, s := range g.byID {
		g.ordered = append(g.ordered, s)
	}
	sort.Slice(g.ordered, func(i, j int) bool { return g.ordered[i].ID < g.ordered[j].ID })
	return g, nil
}

// WorldBounds returns the world's axis-aligned bounding box.
func (g *Geometry) WorldBounds() (min, max Vec3) { return g.worldMin, g.worldMax }

// OutsideWorld reports whether p is outside the world bounding box,
// used by the integrator's hit-boundaries check (spec.md §4.5.1 step 1).
func (g *Geometry) OutsideWorld(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < g.worldMin[i] || p[i] > g.worldMax[i] {
			return true
		}
	}
	return false
}

// Solid returns the solid with the given ID, or nil.
func (g *Geometry) Solid(id int) *Solid { return g.byID[id] }

// SegmentTest tests the segment p1->p2 (spanning times t1->t2) against
// every meshed solid, returning collision records ordered by s
// ascending with ties broken by solid ID ascending, per spec.md §4.3.
func (g *Geometry) SegmentTest(p1, p2 Vec3, t1, t2 float64) []CollisionRecord {
	var recs []CollisionRecord
	for _, s := range g.ordered {
		if s.Mesh == nil {
			continue
		}
		for _, hit := range s.Mesh.IntersectSegment(p1, p2) {
			tHit := t1 + hit.S*(t2-t1)
			recs = append(recs, CollisionRecord{
				S: hit.S, SolidID: s.ID, Normal: hit.Normal,
				Ignored: s.IsIgnoredAt(tHit),
			})
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].S != recs[j].S {
			return recs[i].S < recs[j].S
		}
		return recs[i].SolidID < recs[j].SolidID
	})
	return recs
}

// rayLength is the vertical cast distance the containment query uses:
// from p straight up, far enough to clear the world bounding box.
func (g *Geometry) rayLength() float64 {
	h := g.worldMax[2] - g.worldMin[2]
	if h <= 0 {
		h = 1
	}
	return 2 * h
}

// Containment returns the current-solid set at point p and time t:
// a vertical ray is cast from p to outside the world bounding box,
// crossings are counted per solid, and a solid is included iff its
// crossing count is odd and the solid is not ignored at time t. The
// default solid is always included, per spec.md §4.3.
func (g *Geometry) Containment(p Vec3, t float64) *CurrentSolids {
	cs := newCurrentSolids()
	cs.add(DefaultSolidID)
	dir := Vec3{0, 0, g.rayLength()}
	for _, s := range g.ordered {
		if s.Mesh == nil {
			continue
		}
		hits := s.Mesh.IntersectRay(p, dir)
		count := 0
		for _, h := range hits {
			if h.S <= 1 && !s.IsIgnoredAt(t) {
				count++
			}
		}
		if count%2 == 1 {
			cs.add(s.ID)
		}
	}
	return cs
}
