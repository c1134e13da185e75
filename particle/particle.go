// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"github.com/cpmech/gosl/la"
	"github.com/dougUCN/PENTrack/field"
	"github.com/dougUCN/PENTrack/geo"
)

// Species holds the immutable per-species attributes of spec.md §3:
// name, charge, mass, magnetic moment.
type Species struct {
	Name   string
	Charge float64 // Coulombs
	Mass   float64 // kg
	Moment float64 // magnetic dipole moment, J/T
}

// Physics is the capability set a particle species provides, per
// spec.md §4.6 / Design Notes §9: a record of closures, not a
// heavyweight interface implemented per concrete type -- the
// integrator (package sim) is generic over this record alone.
type Physics struct {
	// Deriv computes dy/dt: the fully relativistic equation of motion
	// ẋ=v; v̇ = (1/γm)(F - v(v·F)/c²), F = gravity + Lorentz +
	// magnetic-dipole, per spec.md §4.6.
	Deriv func(inst *Instance, t float64, y State, fields *field.Manager) (State, error)

	// OnHit is called when a localised boundary crossing is resolved.
	// It may mutate y2/t2 (reflection) and the polarisation, and
	// reports whether the trajectory was materially changed, per
	// spec.md §4.5.1.
	OnHit func(inst *Instance, t1 float64, y1 State, t2 *float64, y2 *State, normal la.Vector, leaving, entering *geo.Solid) (changed bool, err error)

	// OnStep is called once per sub-interval that ends without a
	// reflection (no crossing, or an unreflected pass-through
	// crossing), for bulk absorption/scattering, per spec.md §4.5.1.
	OnStep func(inst *Instance, t1 float64, y1 State, t2 float64, y2 State, activeSolidID int) (changed bool, err error)

	// Decay appends secondaries to inst when its lifetime is reached,
	// per spec.md §4.6.
	Decay func(inst *Instance, t float64, y State)

	// Epot returns the potential energy at (t,y,pol) in the given
	// field, per spec.md §4.6.
	Epot func(inst *Instance, t float64, y State, pol int, fields *field.Manager) float64
}

// Instance is one particle's mutable per-instance state, per spec.md
// §3: everything that changes over the course of an integration.
type Instance struct {
	Species  *Species
	Physics  Physics
	Number   int // particle number, for output records
	JobID    int

	// mutable
	Lifetime    float64 // proper lifetime τ, drawn at creation
	Polarity    int     // -1, 0, +1
	PathLength  float64
	HitCount    int
	SpinFlips   int
	StepCount   int
	Hmax        float64
	Status      int // terminal status ID; see package sim
	Secondaries []*Instance

	StartT, EndT float64
	StartY, EndY State
	StartPol     int
	EndPol       int
}

// AddSecondary appends a secondary particle, owned exclusively by
// inst (destruction cascades, per spec.md §3).
func (inst *Instance) AddSecondary(child *Instance) {
	inst.Secondaries = append(inst.Secondaries, child)
}

// UpdateHmax raises Hmax if h exceeds it, preserving the monotone
// non-decreasing invariant of spec.md §3.
func (inst *Instance) UpdateHmax(h float64) {
	if h > inst.Hmax {
		inst.Hmax = h
	}
}
