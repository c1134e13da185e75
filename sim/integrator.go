// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dougUCN/PENTrack/field"
	"github.com/dougUCN/PENTrack/geo"
	"github.com/dougUCN/PENTrack/ode"
	"github.com/dougUCN/PENTrack/out"
	"github.com/dougUCN/PENTrack/particle"
)

// RunConfig carries the per-run toggles and bounds of spec.md §6:
// "per run: t_max, snapshot time list, toggles for end/track/hit/
// snapshot/spin logging".
type RunConfig struct {
	TMax          float64
	MaxTrajLength float64
	MaxSampleDist float64 // spec.md §2, MAX_SAMPLE_DIST
	SnapshotTimes []float64

	TrackLog    bool
	HitLog      bool
	SnapshotLog bool

	// ProgressEvery, if >0, prints a progress line to stderr roughly
	// every this many seconds of wall-clock time, per spec.md §4.5
	// step 4. Zero disables progress printing.
	ProgressEvery float64
}

// DefaultMaxSampleDist is MAX_SAMPLE_DIST per spec.md §2 (0.01 length
// units, here meters).
const DefaultMaxSampleDist = 0.01

// Integrator drives one particle.Instance to a terminal status, per
// spec.md §4.5. It holds references to the geometry, field manager,
// and output sinks; these are immutable and safe to share across
// concurrently-running Integrators (spec.md §5). Run writes end and
// track records only: it writes no hit records, and neither HitSink
// nor RunConfig.HitLog is consulted.
type Integrator struct {
	Geom     *geo.Geometry
	Fields   *field.Manager
	EndSink  out.EndSink
	Track    out.TrackSink
	HitSink  out.HitSink
	JobID    int
}

// Run executes the central loop of spec.md §4.5 until inst.Status
// becomes non-zero, then emits the end record (if EndSink is set).
func (in *Integrator) Run(inst *particle.Instance, cfg RunConfig) error {
	started := time.Now()
	maxSampleDist := cfg.MaxSampleDist
	if maxSampleDist <= 0 {
		maxSampleDist = DefaultMaxSampleDist
	}

	t0 := inst.StartT
	inst.EndT = t0
	inst.EndY = inst.StartY
	inst.EndPol = inst.StartPol
	inst.Polarity = inst.StartPol

	rhs := ode.RHSFunc(func(t float64, y ode.State) (ode.State, error) {
		dy, err := inst.Physics.Deriv(inst, t, particle.FromODE(y), in.Fields)
		if err != nil {
			return nil, err
		}
		return dy.ToODE(), nil
	})

	stepper, err := ode.NewStepper(t0, inst.StartY.ToODE(), rhs, ode.DefaultTolerances())
	if err != nil {
		inst.Status = int(StatusNumericalError)
		return in.finish(inst, started, cfg)
	}

	pos0 := geo.Vec3{inst.StartY[0], inst.StartY[1], inst.StartY[2]}
	cur := in.Geom.Containment(pos0, t0)
	resolver := &Resolver{Geom: in.Geom}

	hNext := maxSampleDist / math.Max(inst.StartY.Speed(), 1e-3)
	lastProgress := started

	for inst.Status == int(StatusUnknown) {
		t := stepper.T()
		tauEnd := inst.StartT + inst.Lifetime
		hSuggested := math.Min(hNext, tauEnd-t)
		hSuggested = math.Min(hSuggested, cfg.TMax-t)
		if hSuggested <= 0 {
			if t >= tauEnd {
				inst.Status = int(StatusDecayed)
			} else {
				inst.Status = int(StatusNotFinished)
			}
			break
		}

		tPrev := t
		yPrev := particle.FromODE(stepper.Y())
		hDid, next, stepErr := stepper.Step(hSuggested, rhs)
		if stepErr != nil {
			inst.Status = int(StatusNumericalError)
			break
		}
		hNext = next
		tNow := stepper.T()
		yNow := particle.FromODE(stepper.Y())

		dense := func(tq float64) particle.State {
			var y particle.State
			for i := 0; i < 6; i++ {
				y[i] = stepper.DenseOut(i, tq, hDid)
			}
			return y
		}

		subs := subdivide(tPrev, yPrev, tNow, yNow, dense, maxSampleDist)
		var hitT float64
		var hitY particle.State
		hitOccurred := false
		for _, sub := range subs {
			changed, tOut, yOut, rerr := resolver.Resolve(inst, cur, sub.t1, sub.y1, sub.t2, sub.y2, dense, 1)
			if rerr != nil {
				inst.Status = int(StatusNumericalError)
				break
			}
			inst.StepCount++
			inst.PathLength += segmentLength(sub.y1, sub.y2)
			inst.UpdateHmax(heightOf(sub.y1))
			inst.UpdateHmax(heightOf(sub.y2))

			if in.Track != nil && cfg.TrackLog {
				in.emitTrack(inst, tOut, yOut)
			}
			if cfg.SnapshotLog {
				in.emitSnapshots(inst, sub.t1, sub.t2, dense, cfg.SnapshotTimes)
			}
			if changed {
				hitOccurred = true
				hitT, hitY = tOut, yOut
				break
			}
			if inst.Status != int(StatusUnknown) {
				break
			}
		}

		if inst.Status != int(StatusUnknown) {
			break
		}

		if hitOccurred {
			// a reflection (or other OnHit-mutated trajectory) leaves
			// the running stepper's internal state stale; reinitialise
			// it from the corrected point before continuing, per
			// spec.md §4.5.1 ("this hook may modify y₂ and t₂").
			newStepper, serr := ode.NewStepper(hitT, hitY.ToODE(), rhs, ode.DefaultTolerances())
			if serr != nil {
				inst.Status = int(StatusNumericalError)
				break
			}
			stepper = newStepper
			tNow = hitT
			hNext = maxSampleDist / math.Max(hitY.Speed(), 1e-3)
		}

		if tNow >= tauEnd {
			inst.Status = int(StatusDecayed)
			break
		}
		if tNow >= cfg.TMax || inst.PathLength >= cfg.MaxTrajLength {
			inst.Status = int(StatusNotFinished)
			break
		}

		if cfg.ProgressEvery > 0 && time.Since(lastProgress).Seconds() >= cfg.ProgressEvery {
			progress := math.Max((tNow-t0)/inst.Lifetime, (tNow-t0)/(cfg.TMax-t0))
			progress = math.Max(progress, inst.PathLength/cfg.MaxTrajLength)
			fmt.Fprintf(os.Stderr, ">> particle %d: %.1f%%\n", inst.Number, 100*progress)
			lastProgress = time.Now()
		}
	}

	if inst.Status == int(StatusDecayed) && inst.Physics.Decay != nil {
		inst.Physics.Decay(inst, stepper.T(), particle.FromODE(stepper.Y()))
	}

	inst.EndT = stepper.T()
	inst.EndY = particle.FromODE(stepper.Y())
	inst.EndPol = inst.Polarity

	return in.finish(inst, started, cfg)
}

func (in *Integrator) finish(inst *particle.Instance, started time.Time, cfg RunConfig) error {
	inst.Hmax = math.Max(inst.Hmax, heightOf(inst.EndY))
	if in.EndSink == nil {
		return nil
	}
	epotStart := 0.0
	epotEnd := 0.0
	if inst.Physics.Epot != nil {
		epotStart = inst.Physics.Epot(inst, inst.StartT, inst.StartY, inst.StartPol, in.Fields)
		epotEnd = inst.Physics.Epot(inst, inst.EndT, inst.EndY, inst.EndPol, in.Fields)
	}
	rec := out.EndRecord{
		JobNumber: in.JobID, Particle: inst.Number,
		TStart: inst.StartT, XStart: [3]float64{inst.StartY[0], inst.StartY[1], inst.StartY[2]},
		VStart: [3]float64{inst.StartY[3], inst.StartY[4], inst.StartY[5]},
		PolStart: inst.StartPol, HStart: heightOf(inst.StartY), EStart: epotStart,
		TEnd: inst.EndT, XEnd: [3]float64{inst.EndY[0], inst.EndY[1], inst.EndY[2]},
		VEnd: [3]float64{inst.EndY[3], inst.EndY[4], inst.EndY[5]},
		PolEnd: inst.EndPol, HEnd: heightOf(inst.EndY), EEnd: epotEnd,
		StopID: inst.Status, NSpinFlip: inst.SpinFlips, ComputingTime: time.Since(started).Seconds(),
		NHit: inst.HitCount, NStep: inst.StepCount, TrajLength: inst.PathLength, Hmax: inst.Hmax,
	}
	return in.EndSink.WriteEnd(inst.Species.Name, rec)
}

func (in *Integrator) emitTrack(inst *particle.Instance, t float64, y particle.State) {
	if in.Track == nil {
		return
	}
	bt, _ := in.Fields.B(y[0], y[1], y[2], t)
	et, _ := in.Fields.E(y[0], y[1], y[2], t)
	epot := 0.0
	if inst.Physics.Epot != nil {
		epot = inst.Physics.Epot(inst, t, y, inst.Polarity, in.Fields)
	}
	rec := out.TrackRecord{
		Particle: inst.Number, Pol: inst.Polarity, T: t,
		X: [3]float64{y[0], y[1], y[2]}, V: [3]float64{y[3], y[4], y[5]},
		H: heightOf(y), E: epot, B: [4][4]float64(bt),
		Ex: et.E[0], Ey: et.E[1], Ez: et.E[2], V0: et.V,
	}
	in.Track.WriteTrack(inst.Species.Name, rec)
}

func (in *Integrator) emitSnapshots(inst *particle.Instance, t1, t2 float64, dense func(float64) particle.State, times []float64) {
	for _, ts := range times {
		if ts >= t1 && ts < t2 {
			y := dense(ts)
			in.emitTrack(inst, ts, y)
		}
	}
}

func heightOf(y particle.State) float64 { return y[2] }

func segmentLength(y1, y2 particle.State) float64 {
	dx, dy, dz := y2[0]-y1[0], y2[1]-y1[1], y2[2]-y1[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

type subInterval struct {
	t1, t2 float64
	y1, y2 particle.State
}

// subdivide implements spec.md §4.5 step 2: split [t1,t2] into
// sub-intervals of spatial length <= maxDist, using |v| at each
// sub-interval's start to convert distance to a time step. The last
// sub-interval may be shorter.
func subdivide(t1 float64, y1 particle.State, t2 float64, y2 particle.State, dense func(float64) particle.State, maxDist float64) []subInterval {
	var subs []subInterval
	t := t1
	y := y1
	for t < t2 {
		speed := math.Max(y.Speed(), 1e-6)
		dt := maxDist / speed
		tNext := math.Min(t+dt, t2)
		var yNext particle.State
		if tNext >= t2 {
			yNext = y2
		} else {
			yNext = dense(tNext)
		}
		subs = append(subs, subInterval{t1: t, y1: y, t2: tNext, y2: yNext})
		t = tNext
		y = yNext
	}
	if len(subs) == 0 {
		subs = append(subs, subInterval{t1: t1, y1: y1, t2: t2, y2: y2})
	}
	return subs
}
