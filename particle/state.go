// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particle defines the particle state and the capability set
// (equations of motion, hit/step reactions, decay) that the trajectory
// integrator is generic over.
package particle

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/dougUCN/PENTrack/ode"
)

// State is the 6-vector (x, y, z, vx, vy, vz) describing a particle's
// position and velocity at some instant. Index 0-2 are position,
// 3-5 are velocity.
type State [6]float64

// Pos returns the position components as a 3-vector.
func (s State) Pos() la.Vector {
	return la.Vector{s[0], s[1], s[2]}
}

// Vel returns the velocity components as a 3-vector.
func (s State) Vel() la.Vector {
	return la.Vector{s[3], s[4], s[5]}
}

// Speed returns |v|.
func (s State) Speed() float64 {
	vx, vy, vz := s[3], s[4], s[5]
	return math.Sqrt(vx*vx + vy*vy + vz*vz)
}

// Sub returns s - o component-wise.
func (s State) Sub(o State) State {
	var r State
	for i := range s {
		r[i] = s[i] - o[i]
	}
	return r
}

// Lerp linearly interpolates between s and o at fraction frac in [0,1].
func (s State) Lerp(o State, frac float64) State {
	var r State
	for i := range s {
		r[i] = s[i] + frac*(o[i]-s[i])
	}
	return r
}

// ToODE converts to the slice form the generic ode.Stepper works with.
func (s State) ToODE() ode.State {
	return ode.State{s[0], s[1], s[2], s[3], s[4], s[5]}
}

// FromODE converts back from the stepper's slice form.
func FromODE(y ode.State) State {
	return State{y[0], y[1], y[2], y[3], y[4], y[5]}
}
