// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements the three logical output records of
// spec.md §6 (end, track, hit) and their file sinks.
package out

import "github.com/cpmech/gosl/io"

// EndRecord is emitted once per particle on termination, per spec.md §6.
type EndRecord struct {
	JobNumber     int
	Particle      int
	TStart        float64
	XStart        [3]float64
	VStart        [3]float64
	PolStart      int
	HStart        float64
	EStart        float64
	TEnd          float64
	XEnd          [3]float64
	VEnd          [3]float64
	PolEnd        int
	HEnd          float64
	EEnd          float64
	StopID        int
	NSpinFlip     int
	ComputingTime float64
	NHit          int
	NStep         int
	TrajLength    float64
	Hmax          float64
}

// String renders the record in the column order named by spec.md §6.
func (r EndRecord) String() string {
	l := io.Sf("%d %d", r.JobNumber, r.Particle)
	l += io.Sf(" %.10e %.10e %.10e %.10e %.10e %.10e %.10e %d %.10e %.10e",
		r.TStart, r.XStart[0], r.XStart[1], r.XStart[2],
		r.VStart[0], r.VStart[1], r.VStart[2], r.PolStart, r.HStart, r.EStart)
	l += io.Sf(" %.10e %.10e %.10e %.10e %.10e %.10e %.10e %d %.10e %.10e",
		r.TEnd, r.XEnd[0], r.XEnd[1], r.XEnd[2],
		r.VEnd[0], r.VEnd[1], r.VEnd[2], r.PolEnd, r.HEnd, r.EEnd)
	l += io.Sf(" %d %d %.10e %d %d %.10e %.10e",
		r.StopID, r.NSpinFlip, r.ComputingTime, r.NHit, r.NStep, r.TrajLength, r.Hmax)
	return l
}

// EndHeader is the whitespace-separated column header for EndRecord.
const EndHeader = "jobnumber particle tstart xstart ystart zstart vxstart vystart vzstart polstart " +
	"Hstart Estart tend xend yend zend vxend vyend vzend polend Hend Eend " +
	"stopID Nspinflip ComputingTime Nhit Nstep trajlength Hmax"

// TrackRecord is one sampled trajectory point, per spec.md §6: the
// particle state plus the full 4x4 B tensor (row-major) and the
// electric potential/field.
type TrackRecord struct {
	Particle int
	Pol      int
	T        float64
	X        [3]float64
	V        [3]float64
	H, E     float64
	B        [4][4]float64
	Ex, Ey, Ez, V0 float64
}

// String renders the record in the column order named by spec.md §6.
func (r TrackRecord) String() string {
	l := io.Sf("%d %d %.10e %.10e %.10e %.10e %.10e %.10e %.10e %.10e %.10e",
		r.Particle, r.Pol, r.T, r.X[0], r.X[1], r.X[2], r.V[0], r.V[1], r.V[2], r.H, r.E)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			l += io.Sf(" %.10e", r.B[i][j])
		}
	}
	l += io.Sf(" %.10e %.10e %.10e %.10e", r.Ex, r.Ey, r.Ez, r.V0)
	return l
}

// TrackHeader enumerates the 16 B-tensor columns row-major per the
// BTensor layout doc (row 0: Bx,By,Bz,|B|; rows 1-3: d.../dx,dy,dz).
const TrackHeader = "particle polarisation t x y z vx vy vz H E " +
	"Bx By Bz Bmag dBxdx dBydx dBzdx dBmagdx dBxdy dBydy dBzdy dBmagdy dBxdz dBydz dBzdz dBmagdz Ex Ey Ez V"

// HitRecord is one resolved collision, per spec.md §6.
type HitRecord struct {
	JobNumber       int
	Particle        int
	T               float64
	X               [3]float64
	V1              [3]float64
	Pol1            int
	V2              [3]float64
	Pol2            int
	Normal          [3]float64
	LeavingID       int
	EnteringID      int
}

// String renders the record in the column order named by spec.md §6.
func (r HitRecord) String() string {
	return io.Sf("%d %d %.10e %.10e %.10e %.10e %.10e %.10e %.10e %d %.10e %.10e %.10e %d %.10e %.10e %.10e %d %d",
		r.JobNumber, r.Particle, r.T, r.X[0], r.X[1], r.X[2],
		r.V1[0], r.V1[1], r.V1[2], r.Pol1,
		r.V2[0], r.V2[1], r.V2[2], r.Pol2,
		r.Normal[0], r.Normal[1], r.Normal[2],
		r.LeavingID, r.EnteringID)
}

const HitHeader = "jobnumber particle t x y z v1x v1y v1z pol1 v2x v2y v2z pol2 nx ny nz leavingID enteringID"
