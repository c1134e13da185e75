// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "github.com/cpmech/gosl/chk"

func errAlreadyPresent(id int) error {
	return chk.Err("geo: solid %d is already in the current-solid set (numerical error)", id)
}

func errNotPresent(id int) error {
	return chk.Err("geo: solid %d is not in the current-solid set (numerical error)", id)
}

func errCannotLeaveDefault() error {
	return chk.Err("geo: the default solid (ID=%d) can never leave the current-solid set", DefaultSolidID)
}
