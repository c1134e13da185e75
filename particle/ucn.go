// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/la"
	"github.com/dougUCN/PENTrack/geo"
	"github.com/dougUCN/PENTrack/material"
)

// physical constants (SI) for the neutron species
const (
	neutronMass     = 1.67492749804e-27 // kg
	neutronMoment   = -9.6623651e-27    // J/T, neutron magnetic moment (negative sign)
	electronVolt    = 1.602176634e-19   // J per eV
	neutronLifetime = 879.4             // s, free-neutron mean lifetime (beta decay)
)

// NewNeutron returns the ultra-cold-neutron species of spec.md §4.6:
// zero charge, the free-neutron mass and magnetic moment. Pair with
// NeutronPhysics to wire in wall-interaction and decay behaviour.
func NewNeutron() *Species {
	return &Species{
		Name:   "neutron",
		Charge: 0,
		Mass:   neutronMass,
		Moment: neutronMoment,
	}
}

// DrawNeutronLifetime samples a proper decay lifetime τ from the
// exponential distribution with mean neutronLifetime, for
// Instance.Lifetime at particle creation.
func DrawNeutronLifetime() float64 {
	return rand.ExpFloat64() * neutronLifetime
}

// NeutronPhysics builds the Physics capability record for a neutron
// species, grounded on the same closed-form-EOM style as
// RelativisticEOM and on the wall-physics description of spec.md §3/§4.6.
func NeutronPhysics(species *Species, materials map[string]*material.Material) Physics {
	return Physics{
		Deriv: RelativisticEOM(species),
		Epot:  Epot(species),
		OnHit: neutronOnHit(materials),
		OnStep: func(inst *Instance, t1 float64, y1 State, t2 float64, y2 State, activeSolidID int) (bool, error) {
			return false, nil
		},
		Decay: neutronDecay,
	}
}

func materialOf(materials map[string]*material.Material, name string) *material.Material {
	if m, ok := materials[name]; ok {
		return m
	}
	return material.Vacuum
}

// neutronOnHit returns the OnHit closure implementing Fermi-potential
// boundary physics: the component of kinetic energy normal to the
// surface is compared against the entering solid's Fermi real
// potential to decide reflection vs. transmission, with an absorption
// draw weighted by the imaginary part, and a diffuse/specular choice
// and independent spin-flip draw on reflection, per spec.md §3.
func neutronOnHit(materials map[string]*material.Material) func(inst *Instance, t1 float64, y1 State, t2 *float64, y2 *State, normal la.Vector, leaving, entering *geo.Solid) (bool, error) {
	return func(inst *Instance, t1 float64, y1 State, t2 *float64, y2 *State, normal la.Vector, leaving, entering *geo.Solid) (bool, error) {
		mat := materialOf(materials, entering.MaterialName)

		vel := y1.Vel()
		vn := vel[0]*normal[0] + vel[1]*normal[1] + vel[2]*normal[2]
		ekinPerp := 0.5 * neutronMass * vn * vn / electronVolt * 1e9 // neV

		if mat.FermiReal <= 0 || ekinPerp > mat.FermiReal {
			// transmits into the entering solid unreflected.
			return false, nil
		}

		inst.HitCount++

		if mat.FermiReal > 0 {
			lossProb := mat.FermiImag / mat.FermiReal
			if rand.Float64() < lossProb {
				inst.Status = entering.ID
				return true, nil
			}
		}

		if rand.Float64() < mat.SpinFlipProb {
			inst.Polarity = -inst.Polarity
			inst.SpinFlips++
		}

		speed := y1.Speed()
		var reflected [3]float64
		if rand.Float64() < mat.DiffuseProb {
			reflected = diffuseDirection(normal)
		} else {
			reflected = specularReflect(vel, normal)
			normSpeed := math.Sqrt(reflected[0]*reflected[0] + reflected[1]*reflected[1] + reflected[2]*reflected[2])
			if normSpeed > 0 {
				reflected[0], reflected[1], reflected[2] = reflected[0]/normSpeed, reflected[1]/normSpeed, reflected[2]/normSpeed
			}
		}

		pos := y1.Pos()
		*y2 = State{pos[0], pos[1], pos[2], reflected[0] * speed, reflected[1] * speed, reflected[2] * speed}
		*t2 = t1
		return true, nil
	}
}

// specularReflect returns v mirrored about the plane with unit normal n:
// v' = v - 2(v·n)n.
func specularReflect(v la.Vector, n la.Vector) [3]float64 {
	vn := v[0]*n[0] + v[1]*n[1] + v[2]*n[2]
	return [3]float64{
		v[0] - 2*vn*n[0],
		v[1] - 2*vn*n[1],
		v[2] - 2*vn*n[2],
	}
}

// diffuseDirection draws a unit direction from the cosine-weighted
// (Lambertian) hemisphere about the outward unit normal n.
func diffuseDirection(n la.Vector) [3]float64 {
	u1, u2 := rand.Float64(), rand.Float64()
	r := math.Sqrt(u1)
	phi := 2 * math.Pi * u2
	// local hemisphere sample, z-up
	lx, ly, lz := r*math.Cos(phi), r*math.Sin(phi), math.Sqrt(1-u1)

	// build an orthonormal basis (t1,t2,n)
	var t1 [3]float64
	if math.Abs(n[0]) < 0.9 {
		t1 = crossNorm([3]float64{1, 0, 0}, n)
	} else {
		t1 = crossNorm([3]float64{0, 1, 0}, n)
	}
	t2 := [3]float64{
		n[1]*t1[2] - n[2]*t1[1],
		n[2]*t1[0] - n[0]*t1[2],
		n[0]*t1[1] - n[1]*t1[0],
	}
	return [3]float64{
		lx*t1[0] + ly*t2[0] + lz*n[0],
		lx*t1[1] + ly*t2[1] + lz*n[1],
		lx*t1[2] + ly*t2[2] + lz*n[2],
	}
}

func crossNorm(a [3]float64, b la.Vector) [3]float64 {
	c := [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
	n := math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
	if n == 0 {
		return [3]float64{1, 0, 0}
	}
	return [3]float64{c[0] / n, c[1] / n, c[2] / n}
}

// neutronDecay implements free-neutron beta decay: n → p + e- + ν̄e.
// The antineutrino carries away most of the ~782 keV Q-value
// unobserved; this model keeps only the two charged decay products as
// secondaries, giving the electron 60% and the proton 40% of the full
// Q-value as kinetic energy, emitted in opposite directions along one
// direction drawn from the cosine-weighted hemisphere about +z; their
// momenta are not balanced. This is a bookkeeping simplification (no beta spectrum
// sampling), sufficient for trajectory accounting of the charged
// products, not a precision decay-spectrum simulator.
func neutronDecay(inst *Instance, t float64, y State) {
	const qValue = 782e3 * electronVolt // J
	const electronMass = 9.1093837015e-31
	const protonMass = 1.67262192369e-27

	eKineticFrac := 0.6 // representative split, electron takes the larger share
	eKinetic := qValue * eKineticFrac
	pKinetic := qValue * (1 - eKineticFrac)

	dir := diffuseDirection(la.Vector{0, 0, 1})

	pos := y.Pos()
	eSpeed := math.Sqrt(2 * eKinetic / electronMass)
	pSpeed := math.Sqrt(2 * pKinetic / protonMass)

	electron := &Instance{
		Species: &Species{Name: "electron", Charge: -1.602176634e-19, Mass: electronMass, Moment: 0},
		Number:  inst.Number,
		JobID:   inst.JobID,
		StartT:  t,
		StartY:  State{pos[0], pos[1], pos[2], dir[0] * eSpeed, dir[1] * eSpeed, dir[2] * eSpeed},
	}
	proton := &Instance{
		Species: &Species{Name: "proton", Charge: 1.602176634e-19, Mass: protonMass, Moment: 0},
		Number:  inst.Number,
		JobID:   inst.JobID,
		StartT:  t,
		StartY:  State{pos[0], pos[1], pos[2], -dir[0] * pSpeed, -dir[1] * pSpeed, -dir[2] * pSpeed},
	}
	inst.AddSecondary(electron)
	inst.AddSecondary(proton)
}
