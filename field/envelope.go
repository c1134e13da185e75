// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// EnvelopeShape selects the ramp curve used during the rising and
// falling parts of a time envelope. spec.md §9 (Open Question b)
// leaves the exact shape pluggable; both documented variants are
// implemented here.
type EnvelopeShape int

const (
	// Linear ramps use a straight line from 0 to 1 (and 1 to 0).
	Linear EnvelopeShape = iota
	// SmoothStep ramps use a Hermite 3u²-2u³ step, continuous in both
	// value and first derivative at the ramp boundaries.
	SmoothStep
)

// Envelope is the time-dependent scale σ(t) ∈ [0,1] applied to a
// B-source, per spec.md §4.1:
//
//	t < NullFieldTime                              -> σ = 0
//	NullFieldTime <= t < +RampUpTime                -> σ rises 0 -> 1
//	then a plateau of FullFieldTime                 -> σ = 1
//	then RampDownTime                               -> σ falls 1 -> 0
//	after                                           -> σ = 0
type Envelope struct {
	NullFieldTime float64
	RampUpTime    float64
	FullFieldTime float64
	RampDownTime  float64
	Shape         EnvelopeShape
}

// smoothStep implements the 3u²-2u³ Hermite step on u in [0,1];
// S(0)=0, S(1)=1, S'(0)=S'(1)=0.
func smoothStep(u float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	return u * u * (3 - 2*u)
}

func rampUp(u float64, shape EnvelopeShape) float64 {
	if shape == SmoothStep {
		return smoothStep(u)
	}
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// Scale returns σ(t).
func (e Envelope) Scale(t float64) float64 {
	t0 := e.NullFieldTime
	t1 := t0 + e.RampUpTime
	t2 := t1 + e.FullFieldTime
	t3 := t2 + e.RampDownTime
	switch {
	case t < t0:
		return 0
	case t < t1:
		if e.RampUpTime <= 0 {
			return 1
		}
		return rampUp((t-t0)/e.RampUpTime, e.Shape)
	case t < t2:
		return 1
	case t < t3:
		if e.RampDownTime <= 0 {
			return 0
		}
		return 1 - rampUp((t-t2)/e.RampDownTime, e.Shape)
	default:
		return 0
	}
}

// Constant returns an envelope that is always fully on; useful for
// sources with no time dependence.
func Constant() Envelope {
	return Envelope{FullFieldTime: 1e300}
}
