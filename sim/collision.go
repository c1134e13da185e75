// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/dougUCN/PENTrack/geo"
	"github.com/dougUCN/PENTrack/particle"
)

// ReflectTolerance bounds how close (in the same length units as the
// geometry) a collision's entry and exit ends must be to the
// candidate crossing point before it is treated as localised, per
// spec.md §4.5.1. The spec names the quantity but not its value; this
// mirrors the teacher's practice of a small fixed numerical-zero
// tolerance for root-bracketing loops.
const ReflectTolerance = 1e-8

// MaxBisectIter is the recursion depth at which an unresolved crossing
// is forced to be treated as localised, per spec.md §4.5.1.
const MaxBisectIter = 100

// DenseFunc evaluates the dense-output state at any t within the
// stepper's last accepted step, independent of how finely the step
// has been resampled into sub-intervals.
type DenseFunc func(t float64) particle.State

func toVec3(s particle.State) geo.Vec3 {
	return geo.Vec3{s[0], s[1], s[2]}
}

func toLa(v geo.Vec3) la.Vector {
	return la.Vector{v[0], v[1], v[2]}
}

// Resolver runs the collision resolver of spec.md §4.5.1 against one
// immutable Geometry.
type Resolver struct {
	Geom *geo.Geometry
}

// Resolve processes one sub-interval (t1,y1)->(t2,y2) against the
// current-solid set cur (mutated in place on crossings), per
// spec.md §4.5.1. dense must cover at least [t1,t2]. Returns the
// (possibly truncated/reflected) end of the sub-interval actually
// consumed, and whether the trajectory was materially changed
// (reflection or absorption). A non-nil error is a numerical-error
// condition; the caller terminates the particle with
// StatusNumericalError.
func (r *Resolver) Resolve(inst *particle.Instance, cur *geo.CurrentSolids, t1 float64, y1 particle.State, t2 float64, y2 particle.State, dense DenseFunc, iter int) (changed bool, tOut float64, yOut particle.State, err error) {

	if r.Geom.OutsideWorld(toVec3(y1)) {
		inst.Status = int(StatusLeftWorld)
		return true, t1, y1, nil
	}

	p1, p2 := toVec3(y1), toVec3(y2)
	recs := r.Geom.SegmentTest(p1, p2, t1, t2)
	if len(recs) == 0 {
		changed, err = callOnStep(inst, t1, y1, t2, y2, cur.Top())
		return changed, t2, y2, err
	}

	c := recs[0]
	delta := geo.Sub(p2, p1)
	absDot := math.Abs(geo.Dot(delta, c.Normal))
	localised := (c.S*absDot < ReflectTolerance && (1-c.S)*absDot < ReflectTolerance) || iter > MaxBisectIter-1

	if !localised {
		tCut1 := t1 + (t2-t1)*c.S*(1-0.01*float64(iter))
		tCut2 := t1 + (t2-t1)*c.S*(1+0.01*float64(iter))
		for _, tCut := range []float64{tCut1, tCut2} {
			if tCut <= t1 || tCut >= t2 {
				continue
			}
			yCut := dense(tCut)
			ch, tOut2, yOut2, err2 := r.Resolve(inst, cur, t1, y1, tCut, yCut, dense, iter+1)
			if err2 != nil {
				return false, t1, y1, err2
			}
			if ch {
				return true, tOut2, yOut2, nil
			}
			// the first half passed through without incident (cur is
			// already mutated accordingly): the second half's result is
			// the complete resolution of [t1,t2] for this cut and must
			// be returned directly. Looping to the other cut here would
			// re-query the same crossing from the untouched (t1,y1) and
			// re-apply a now-stale reaction against the just-updated
			// current-solid set.
			ch, tOut2, yOut2, err2 = r.Resolve(inst, cur, tCut, yCut, t2, y2, dense, iter+1)
			if err2 != nil {
				return false, t1, y1, err2
			}
			return ch, tOut2, yOut2, nil
		}
		// neither cut fraction fell strictly inside (t1,t2); fall through
		// and treat as localised rather than loop forever on degenerate
		// geometry.
	}

	// same-s tie check: two distinct solids hit at identical s.
	for _, rec := range recs[1:] {
		if rec.S != c.S {
			break
		}
		if rec.SolidID != c.SolidID {
			return false, t1, y1, numericalError("two surfaces hit simultaneously", t1, p1, r.solidName(c.SolidID), r.solidName(rec.SolidID))
		}
	}

	distnormal := geo.Dot(delta, c.Normal)
	switch {
	case distnormal < 0:
		return r.resolveEntry(inst, cur, t1, y1, t2, y2, c)
	case distnormal > 0:
		return r.resolveExit(inst, cur, t1, y1, t2, y2, c)
	default:
		return false, t1, y1, numericalError("crossing parallel to surface", t1, p1, r.solidName(c.SolidID))
	}
}

func (r *Resolver) solidName(id int) string {
	if s := r.Geom.Solid(id); s != nil {
		return s.Name
	}
	return "?"
}

// resolveEntry handles a crossing into solid c.SolidID.
func (r *Resolver) resolveEntry(inst *particle.Instance, cur *geo.CurrentSolids, t1 float64, y1 particle.State, t2 float64, y2 particle.State, c geo.CollisionRecord) (bool, float64, particle.State, error) {
	if cur.Contains(c.SolidID) {
		return false, t1, y1, numericalError("entering a solid already in the current-solid set", t1, toVec3(y1), r.solidName(c.SolidID))
	}
	activeBefore := cur.Top()
	reacts := c.SolidID > activeBefore

	if !reacts {
		if err := cur.Enter(c.SolidID); err != nil {
			return false, t1, y1, err
		}
		changed, err := callOnStep(inst, t1, y1, t2, y2, cur.Top())
		return changed, t2, y2, err
	}

	leaving := r.Geom.Solid(activeBefore)
	entering := r.Geom.Solid(c.SolidID)
	changed, t2out, y2out, err := r.invokeOnHit(inst, t1, y1, t2, y2, c.Normal, leaving, entering)
	if err != nil {
		return false, t1, y1, err
	}
	if changed {
		// reflected (or otherwise turned back): the particle never
		// actually passed into the new solid, so the current-solid
		// set is left untouched.
		return true, t2out, y2out, nil
	}
	if err := cur.Enter(c.SolidID); err != nil {
		return false, t1, y1, err
	}
	changed, err = callOnStep(inst, t1, y1, t2out, y2out, cur.Top())
	return changed, t2out, y2out, err
}

// resolveExit handles a crossing out of solid c.SolidID.
func (r *Resolver) resolveExit(inst *particle.Instance, cur *geo.CurrentSolids, t1 float64, y1 particle.State, t2 float64, y2 particle.State, c geo.CollisionRecord) (bool, float64, particle.State, error) {
	if !cur.Contains(c.SolidID) {
		return false, t1, y1, numericalError("leaving a solid not in the current-solid set", t1, toVec3(y1), r.solidName(c.SolidID))
	}
	reacts := c.SolidID == cur.Top()

	if !reacts {
		if err := cur.Leave(c.SolidID); err != nil {
			return false, t1, y1, err
		}
		changed, err := callOnStep(inst, t1, y1, t2, y2, cur.Top())
		return changed, t2, y2, err
	}

	afterLeave := cur.Clone()
	if err := afterLeave.Leave(c.SolidID); err != nil {
		return false, t1, y1, err
	}
	leaving := r.Geom.Solid(c.SolidID)
	entering := r.Geom.Solid(afterLeave.Top())
	changed, t2out, y2out, err := r.invokeOnHit(inst, t1, y1, t2, y2, c.Normal, leaving, entering)
	if err != nil {
		return false, t1, y1, err
	}
	if changed {
		// reflected back into the solid it was leaving: it never
		// actually exited, so the current-solid set is left untouched.
		return true, t2out, y2out, nil
	}
	if err := cur.Leave(c.SolidID); err != nil {
		return false, t1, y1, err
	}
	changed, err = callOnStep(inst, t1, y1, t2out, y2out, cur.Top())
	return changed, t2out, y2out, err
}

func (r *Resolver) invokeOnHit(inst *particle.Instance, t1 float64, y1 particle.State, t2 float64, y2 particle.State, normal geo.Vec3, leaving, entering *geo.Solid) (bool, float64, particle.State, error) {
	t2out, y2out := t2, y2
	changed, err := inst.Physics.OnHit(inst, t1, y1, &t2out, &y2out, toLa(normal), leaving, entering)
	return changed, t2out, y2out, err
}

func callOnStep(inst *particle.Instance, t1 float64, y1 particle.State, t2 float64, y2 particle.State, activeSolidID int) (bool, error) {
	if inst.Physics.OnStep == nil {
		return false, nil
	}
	return inst.Physics.OnStep(inst, t1, y1, t2, y2, activeSolidID)
}
