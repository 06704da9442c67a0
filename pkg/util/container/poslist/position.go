// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package poslist

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrNoPosition is returned when an operation is handed NoPosition.
var ErrNoPosition = errors.New("no position")

// ErrStalePosition is returned when a Position refers to a node that has been
// removed, or to a node of a different list.
var ErrStalePosition = errors.New("stale position")

// ErrEmpty is returned by operations that need at least one element.
var ErrEmpty = errors.New("list is empty")

// Position is an opaque reference to one node of a List. Positions are
// returned by the insertion, head/tail and search operations and are advanced
// in place by Next and Prev.
//
// A Position stays valid across insertions and across removal of other nodes.
// Once its own node is removed (or the list is cleared) every operation
// rejects it with ErrStalePosition.
type Position struct {
	// epoch identifies the list incarnation the node was allocated in.
	epoch uint64
	// slot is the arena index plus one, so the zero value is NoPosition.
	slot int32
	gen  uint32
}

// NoPosition is the "end" sentinel: it is returned for an empty list and once
// traversal runs off either end.
var NoPosition = Position{}

// Valid returns whether p refers to a node, i.e. is not NoPosition. It does
// not check whether that node is still linked.
func (p Position) Valid() bool {
	return p.slot != 0
}

// SafeFormat implements redact.SafeFormatter.
func (p Position) SafeFormat(w redact.SafePrinter, _ rune) {
	if !p.Valid() {
		w.SafeString("pos(none)")
		return
	}
	w.Printf("pos(%d.%d@%d)", redact.Safe(p.epoch), redact.Safe(p.slot-1), redact.Safe(p.gen))
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return redact.StringWithoutMarkers(p)
}

var _ redact.SafeFormatter = Position{}

// epochs hands out list incarnation identifiers. Lists are single-owner; the
// counter is shared between all of them.
var epochs atomic.Uint64

func nextEpoch() uint64 {
	return epochs.Add(1)
}
