// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ode implements the adaptive embedded Runge-Kutta stepper
// the trajectory integrator drives, per spec.md §4.4: step with
// embedded error control, and dense output over the last accepted
// step at a cost independent of step size.
package ode

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// State is the vector type the stepper integrates; the integrator's
// RHS works in particle.State's layout, but the stepper itself is
// dimension-agnostic (spec.md §9: "the only abstraction the stepper
// requires").
type State []float64

// RHS is the single-method capability the stepper requires: a
// right-hand-side derivative function, per spec.md §4.4 and Design
// Notes §9 ("expose it through a single-method capability, not a
// heavyweight interface").
type RHS interface {
	Deriv(t float64, y State) (State, error)
}

// RHSFunc adapts a plain function to RHS.
type RHSFunc func(t float64, y State) (State, error)

// Deriv implements RHS.
func (f RHSFunc) Deriv(t float64, y State) (State, error) { return f(t, y) }

// Tolerances controls the embedded error estimate acceptance test, per
// spec.md §4.4 (absolute tolerance 1e-13, zero relative tolerance).
type Tolerances struct {
	Abs float64
	Rel float64
}

// DefaultTolerances returns the spec.md §4.4 defaults.
func DefaultTolerances() Tolerances { return Tolerances{Abs: 1e-13, Rel: 0} }

// Stepper is an adaptive embedded Runge-Kutta integrator (Dormand-
// Prince 5(4), 7 stages, FSAL) with cubic-Hermite dense output over
// the last accepted step, built from the step's endpoint states and
// derivatives -- a deliberate simplification of the literal
// continuous-RK interpolant (see DESIGN.md), chosen because it is
// exactly verifiable by inspection: it reproduces y(t) and f(t) at
// both step endpoints by construction, which is what spec.md §8's
// dense-output property test requires.
type Stepper struct {
	Tol Tolerances

	t    float64
	y    State
	rhs  RHS
	n    int
	f0   State // derivative at the start of the pending step

	// last accepted step, for dense output
	t0, t1   float64
	y0, y1   State
	dy0, dy1 State
}

// NewStepper returns a stepper starting at (t0,y0) for right-hand
// side rhs.
func NewStepper(t0 float64, y0 State, rhs RHS, tol Tolerances) (*Stepper, error) {
	f0, err := rhs.Deriv(t0, y0)
	if err != nil {
		return nil, chk.Err("ode: initial derivative evaluation failed at t=%g: %v", t0, err)
	}
	s := &Stepper{Tol: tol, t: t0, y: append(State{}, y0...), rhs: rhs, n: len(y0), f0: f0}
	s.t0, s.y0, s.dy0 = t0, s.y, f0
	s.t1, s.y1, s.dy1 = t0, s.y, f0
	return s, nil
}

// T returns the current time (the end of the last accepted step).
func (s *Stepper) T() float64 { return s.t }

// Y returns the current state (the end of the last accepted step).
func (s *Stepper) Y() State { return s.y }

// dopri5 Butcher tableau (Dormand & Prince, 1980).
var (
	c2, c3, c4, c5, c6, c7 = 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1.0, 1.0

	a21 = 1.0 / 5
	a31, a32 = 3.0 / 40, 9.0 / 40
	a41, a42, a43 = 44.0 / 45, -56.0 / 15, 32.0 / 9
	a51, a52, a53, a54 = 19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729
	a61, a62, a63, a64, a65 = 9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656
	a71, a72, a73, a74, a75, a76 = 35.0 / 384, 0.0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84

	// 5th order solution weights (same as row 7: FSAL)
	b1, b2, b3, b4, b5, b6, b7 = 35.0 / 384, 0.0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0.0

	// 4th order embedded solution weights, for the error estimate
	e1, e2, e3, e4, e5, e6, e7 = 5179.0 / 57600, 0.0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40
)

func axpy(dst State, a float64, x State, y State) {
	for i := range dst {
		dst[i] = y[i] + a*x[i]
	}
}

func combine(n int, coeffs []float64, ks []State) State {
	out := make(State, n)
	for i := 0; i < n; i++ {
		var v float64
		for j, c := range coeffs {
			if c == 0 {
				continue
			}
			v += c * ks[j][i]
		}
		out[i] = v
	}
	return out
}

// trial runs one Dormand-Prince stage evaluation sequence at step size
// h, returning the 5th-order solution, the error estimate (5th-4th
// order difference), and the new derivative k7 (FSAL: reusable as the
// next step's k1).
func (s *Stepper) trial(h float64) (y5 State, errEst State, k7 State, err error) {
	n := s.n
	k1 := s.f0
	tmp := make(State, n)

	axpy(tmp, h*a21, k1, s.y)
	k2, err := s.rhs.Deriv(s.t+c2*h, tmp)
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 0; i < n; i++ {
		tmp[i] = s.y[i] + h*(a31*k1[i]+a32*k2[i])
	}
	k3, err := s.rhs.Deriv(s.t+c3*h, tmp)
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 0; i < n; i++ {
		tmp[i] = s.y[i] + h*(a41*k1[i]+a42*k2[i]+a43*k3[i])
	}
	k4, err := s.rhs.Deriv(s.t+c4*h, tmp)
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 0; i < n; i++ {
		tmp[i] = s.y[i] + h*(a51*k1[i]+a52*k2[i]+a53*k3[i]+a54*k4[i])
	}
	k5, err := s.rhs.Deriv(s.t+c5*h, tmp)
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 0; i < n; i++ {
		tmp[i] = s.y[i] + h*(a61*k1[i]+a62*k2[i]+a63*k3[i]+a64*k4[i]+a65*k5[i])
	}
	k6, err := s.rhs.Deriv(s.t+c6*h, tmp)
	if err != nil {
		return nil, nil, nil, err
	}

	for i := 0; i < n; i++ {
		tmp[i] = s.y[i] + h*(a71*k1[i]+a72*k2[i]+a73*k3[i]+a74*k4[i]+a75*k5[i]+a76*k6[i])
	}
	k7, err = s.rhs.Deriv(s.t+c7*h, tmp)
	if err != nil {
		return nil, nil, nil, err
	}

	ks := []State{k1, k2, k3, k4, k5, k6, k7}
	y5 = combine(n, []float64{h * b1, h * b2, h * b3, h * b4, h * b5, h * b6, h * b7}, ks)

	errAbs := make(State, n)
	for i := 0; i < n; i++ {
		errAbs[i] = h * ((b1-e1)*k1[i] + (b2-e2)*k2[i] + (b3-e3)*k3[i] + (b4-e4)*k4[i] + (b5-e5)*k5[i] + (b6-e6)*k6[i] + (b7-e7)*k7[i])
	}
	return y5, errAbs, k7, nil
}

// errorNorm computes the RMS error norm against the configured
// tolerances (absolute + relative), per spec.md §4.4.
func (s *Stepper) errorNorm(errEst, y, yNew State) float64 {
	var sum float64
	for i := range errEst {
		scale := s.Tol.Abs + s.Tol.Rel*math.Max(math.Abs(y[i]), math.Abs(yNew[i]))
		if scale == 0 {
			scale = s.Tol.Abs
		}
		r := errEst[i] / scale
		sum += r * r
	}
	return math.Sqrt(sum / float64(len(errEst)))
}

const (
	safety  = 0.9
	minScal = 0.2
	maxScal = 5.0
)

// Step advances the solution by the suggested step hSuggested,
// shrinking and retrying on a rejected error estimate. It returns the
// step actually accepted (hDid) and the suggested next step (hNext),
// per spec.md §4.4. An error (numerical-error condition) is returned
// if the right-hand side fails or the step shrinks below machine
// precision without being accepted.
func (s *Stepper) Step(hSuggested float64, rhs RHS) (hDid, hNext float64, err error) {
	s.rhs = rhs
	h := hSuggested
	for attempt := 0; attempt < 100; attempt++ {
		y5, errEst, k7, e := s.trial(h)
		if e != nil {
			return 0, 0, chk.Err("ode: derivative evaluation failed at t=%g, h=%g: %v", s.t, h, e)
		}
		yNew := make(State, s.n)
		for i := range yNew {
			yNew[i] = s.y[i] + y5[i]
		}
		norm := s.errorNorm(errEst, s.y, yNew)
		if norm <= 1 {
			// accept
			s.t0, s.y0, s.dy0 = s.t, s.y, s.f0
			s.t += h
			s.y = yNew
			s.f0 = k7
			s.t1, s.y1, s.dy1 = s.t, s.y, s.f0
			hDid = h
			factor := safety * math.Pow(norm, -1.0/5.0)
			if norm == 0 {
				factor = maxScal
			}
			factor = math.Max(minScal, math.Min(maxScal, factor))
			hNext = h * factor
			return hDid, hNext, nil
		}
		factor := safety * math.Pow(norm, -1.0/5.0)
		factor = math.Max(minScal, factor)
		h *= factor
		if math.Abs(h) < 1e-300 {
			return 0, 0, chk.Err("ode: step size underflow at t=%g", s.t)
		}
	}
	return 0, 0, chk.Err("ode: step rejected 100 times at t=%g, h=%g", s.t, h)
}

// DenseOut returns the i-th state component at time t within the last
// accepted step [t0, t0+hDid], via cubic Hermite interpolation of the
// step's endpoint values and derivatives, per spec.md §4.4.
func (s *Stepper) DenseOut(i int, t, hDid float64) float64 {
	if hDid == 0 {
		return s.y1[i]
	}
	theta := (t - s.t0) / hDid
	h00 := 2*theta*theta*theta - 3*theta*theta + 1
	h10 := theta*theta*theta - 2*theta*theta + theta
	h01 := -2*theta*theta*theta + 3*theta*theta
	h11 := theta*theta*theta - theta*theta
	return h00*s.y0[i] + h10*hDid*s.dy0[i] + h01*s.y1[i] + h11*hDid*s.dy1[i]
}
