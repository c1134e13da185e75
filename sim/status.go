// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements the trajectory integrator and collision
// resolver: the central loop that drives a particle.Instance from its
// start state to a terminal status, per spec.md §4.5.
package sim

// Status is a terminal status ID, per spec.md §7. Zero means the
// integration is still running; a positive value is the ID of the
// solid a particle was absorbed into.
type Status int

const (
	// StatusUnknown means the integration has not yet terminated.
	StatusUnknown Status = 0
	// StatusNotFinished means the particle survived to t_max or ℓ_max.
	StatusNotFinished Status = -1
	// StatusLeftWorld means the particle left the world bounding box.
	StatusLeftWorld Status = -2
	// StatusNumericalError covers stepper failure, current-solid-set
	// inconsistency, a parallel-to-surface crossing, or two surfaces
	// hit simultaneously.
	StatusNumericalError Status = -3
	// StatusDecayed means the particle reached its proper lifetime τ.
	StatusDecayed Status = -4
	// StatusNoStartPosition means source sampling failed to find an
	// initial position before integration began.
	StatusNoStartPosition Status = -5
)

// Absorbed reports whether id names a terminal "absorbed in solid id"
// status (spec.md §7: any positive value).
func Absorbed(id Status) bool { return id > 0 }
