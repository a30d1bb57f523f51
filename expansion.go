// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emvtlv

import (
	"maps"
	"slices"
)

// ExpansionSet is a set of tag identifiers (see [TagID]) whose values are
// decoded as nested data objects instead of being kept as opaque bytes.
//
// An ExpansionSet is owned by the caller. A [Decoder] only reads it, so a
// single set may be shared by concurrent decodes as long as it is not modified
// while any of them is in progress. A nil ExpansionSet is empty.
type ExpansionSet map[uint64]struct{}

// NewExpansionSet returns a set containing ids.
func NewExpansionSet(ids ...uint64) ExpansionSet {
	s := make(ExpansionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of s.
func (s ExpansionSet) Contains(id uint64) bool {
	_, ok := s[id]
	return ok
}

// With returns a new set containing the members of s and ids. s is not
// modified.
func (s ExpansionSet) With(ids ...uint64) ExpansionSet {
	c := make(ExpansionSet, len(s)+len(ids))
	maps.Copy(c, s)
	for _, id := range ids {
		c[id] = struct{}{}
	}
	return c
}

// IDs returns the members of s in ascending order.
func (s ExpansionSet) IDs() []uint64 {
	return slices.Sorted(maps.Keys(s))
}
