// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math"

// AnalyticKind selects one of a small closed set of closed-form field
// formulas, mirroring the analytical reference solutions in
// ana/colpresfluid.go and ana/selfweight_confined.go.
type AnalyticKind int

const (
	// ExpDecayX is a B field decaying exponentially along x:
	// Bz(x) = B0 * exp(-x/Lambda).
	ExpDecayX AnalyticKind = iota
	// LinearGradZ is a B field with a constant gradient along z:
	// Bz(z) = B0 + Grad*z.
	LinearGradZ
)

// Analytic is a parameterised closed-form B/E source with symbolically
// computed derivatives.
type Analytic struct {
	ID       string
	Kind     AnalyticKind
	B0       float64 // reference field strength (T)
	Lambda   float64 // decay length (m), ExpDecayX
	Grad     float64 // gradient (T/m), LinearGradZ
	V0       float64 // reference potential (V)
	Ez0      float64 // uniform electric field along z (V/m)
	Envelope Envelope
	Escale   float64
}

var _ Source = (*Analytic)(nil)

// Name implements Source.
func (a *Analytic) Name() string { return a.ID }

// B implements Source.
func (a *Analytic) B(x, y, z, t float64) (BTensor, error) {
	sigma := a.Envelope.Scale(t)
	var T BTensor
	switch a.Kind {
	case ExpDecayX:
		bz := a.B0 * math.Exp(-x/a.Lambda)
		dbzdx := -bz / a.Lambda
		T[0][2] = sigma * bz
		T[1][2] = sigma * dbzdx
	case LinearGradZ:
		bz := a.B0 + a.Grad*z
		T[0][2] = sigma * bz
		T[3][2] = sigma * a.Grad
	}
	T.Finalize()
	return T, nil
}

// E implements Source. dEidxj (second derivative of the scalar
// potential) is not computed; see DESIGN.md open question (a).
func (a *Analytic) E(x, y, z, t float64) (ETensor, error) {
	var T ETensor
	T.V = a.Escale * (a.V0 - a.Ez0*z)
	T.E[2] = a.Escale * a.Ez0
	return T, nil
}
