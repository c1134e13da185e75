// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/gosl/chk"

// numericalError builds a diagnostic for the −3 status class of
// spec.md §7: every numerical-error condition carries t, position, and
// the offending solid names.
func numericalError(reason string, t float64, pos [3]float64, solids ...string) error {
	return chk.Err("sim: numerical error (%s) at t=%g pos=(%g,%g,%g) solids=%v", reason, t, pos[0], pos[1], pos[2], solids)
}
