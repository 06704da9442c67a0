// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package dynarray provides Array, a growable array that separates capacity
from size and grows its backing storage in fixed-size chunks.

The growth rule is deliberately simple: whenever an operation needs more
slots than are allocated, the new capacity is

	max(capacity + chunkSize, slotsNeeded)

and every valid element is copied into the new buffer. A loop of PushBack
calls therefore reallocates once per chunk, and a single At far beyond the end
allocates exactly what it needs.

All accessors are bounds checked. At grows; Get does not and reports
ErrIndexOutOfRange instead.
*/
package dynarray
