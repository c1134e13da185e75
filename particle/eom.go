// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/dougUCN/PENTrack/field"
)

// SpeedOfLight is c in m/s, used for the relativistic correction in
// RelativisticEOM.
const SpeedOfLight = 299792458.0

// Gravity is the magnitude of g in m/s^2, acting along -z.
const Gravity = 9.80665

// RelativisticEOM builds the Deriv closure of spec.md §4.6 for a
// species with the given charge, mass and magnetic moment:
//
//	ẋ = v
//	v̇ = (1/γm)(F - v(v·F)/c²),  F = (-mg ẑ) + q(E + v×B) + μ p ∇|B|
//
// p is the particle's current polarisation (inst.Polarity), so a
// single closure serves all three polarisation states of one species.
// Mirrors the closed-form-ODE style of ana/colpresfluid.go: a small
// struct of physical constants feeding a right-hand-side function.
func RelativisticEOM(species *Species) func(inst *Instance, t float64, y State, fields *field.Manager) (State, error) {
	m := species.Mass
	q := species.Charge
	mu := species.Moment
	return func(inst *Instance, t float64, y State, fields *field.Manager) (State, error) {
		pos := y.Pos()
		vel := y.Vel()

		bt, err := fields.B(pos[0], pos[1], pos[2], t)
		if err != nil {
			return State{}, err
		}
		et, err := fields.E(pos[0], pos[1], pos[2], t)
		if err != nil {
			return State{}, err
		}

		b := bt.B3()
		gradBmag := la.Vector{bt[1][3], bt[2][3], bt[3][3]}

		vxb := la.Vector{
			vel[1]*b[2] - vel[2]*b[1],
			vel[2]*b[0] - vel[0]*b[2],
			vel[0]*b[1] - vel[1]*b[0],
		}

		f := la.Vector{0, 0, -m * Gravity}
		for i := 0; i < 3; i++ {
			f[i] += q * (et.E[i] + vxb[i])
			f[i] += mu * float64(inst.Polarity) * gradBmag[i]
		}

		v2 := vel[0]*vel[0] + vel[1]*vel[1] + vel[2]*vel[2]
		gamma := 1.0 / math.Sqrt(1.0-v2/(SpeedOfLight*SpeedOfLight))

		vdotf := vel[0]*f[0] + vel[1]*f[1] + vel[2]*f[2]
		c2 := SpeedOfLight * SpeedOfLight

		var dy State
		dy[0], dy[1], dy[2] = vel[0], vel[1], vel[2]
		for i := 0; i < 3; i++ {
			dy[3+i] = (f[i] - vel[i]*vdotf/c2) / (gamma * m)
		}
		return dy, nil
	}
}

// Epot returns the gravitational plus magnetic potential energy of a
// particle at (t,y,pol) in the given field, per spec.md §4.6:
// U = mgz - μ p |B|.
func Epot(species *Species) func(inst *Instance, t float64, y State, pol int, fields *field.Manager) float64 {
	m := species.Mass
	mu := species.Moment
	return func(inst *Instance, t float64, y State, pol int, fields *field.Manager) float64 {
		pos := y.Pos()
		bt, err := fields.B(pos[0], pos[1], pos[2], t)
		if err != nil {
			return math.NaN()
		}
		return m*Gravity*pos[2] - mu*float64(pol)*bt.Bmag()
	}
}
