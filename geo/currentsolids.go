// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "sort"

// CurrentSolids is the set of solids containing a particle's current
// position, ordered by ID ascending; the solid with the highest ID is
// the "active" solid, per spec.md §3. The default solid is always
// present, per the invariant in spec.md §3/§8.
type CurrentSolids struct {
	ids []int
}

func newCurrentSolids() *CurrentSolids {
	return &CurrentSolids{ids: []int{DefaultSolidID}}
}

// Clone returns an independent copy of the set.
func (c *CurrentSolids) Clone() *CurrentSolids {
	ids := make([]int, len(c.ids))
	copy(ids, c.ids)
	return &CurrentSolids{ids: ids}
}

// Contains reports whether id is in the set.
func (c *CurrentSolids) Contains(id int) bool {
	i := sort.SearchInts(c.ids, id)
	return i < len(c.ids) && c.ids[i] == id
}

// Top returns the highest-ID solid in the set: the active solid.
func (c *CurrentSolids) Top() int {
	return c.ids[len(c.ids)-1]
}

// IDs returns the set's members in ascending order.
func (c *CurrentSolids) IDs() []int {
	out := make([]int, len(c.ids))
	copy(out, c.ids)
	return out
}

// add inserts id, keeping ids sorted; no-op if already present.
func (c *CurrentSolids) add(id int) {
	i := sort.SearchInts(c.ids, id)
	if i < len(c.ids) && c.ids[i] == id {
		return
	}
	c.ids = append(c.ids, 0)
	copy(c.ids[i+1:], c.ids[i:])
	c.ids[i] = id
}

// Enter adds id to the set. It is an error (per spec.md §3 invariant:
// "re-entering a solid already in the set is a detected error") if id
// is already present.
func (c *CurrentSolids) Enter(id int) error {
	if c.Contains(id) {
		return errAlreadyPresent(id)
	}
	c.add(id)
	return nil
}

// Leave removes id from the set. It is an error if id is not present
// or is the default solid (which can never leave the bottom of the
// stack).
func (c *CurrentSolids) Leave(id int) error {
	if id == DefaultSolidID {
		return errCannotLeaveDefault()
	}
	i := sort.SearchInts(c.ids, id)
	if i >= len(c.ids) || c.ids[i] != id {
		return errNotPresent(id)
	}
	c.ids = append(c.ids[:i], c.ids[i+1:]...)
	return nil
}
