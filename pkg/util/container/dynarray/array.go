// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/utillib/pkg/util/container/callback"
)

// DefaultChunkSize is the number of slots added to an Array's capacity each
// time it has to grow, unless the request itself needs more.
const DefaultChunkSize = 100

// ErrIndexOutOfRange is returned by accessors when an index falls outside of
// the range they are allowed to address.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidSize is returned when a negative size is requested.
var ErrInvalidSize = errors.New("invalid size")

// Array is a growable, indexable array with chunked capacity expansion.
//
// Capacity and size are tracked separately. Capacity grows in steps of the
// chunk size (or more, when a single request needs more) and only ever
// shrinks through Clear. Two accessors exist: At is a growing accessor and is
// the only way to make an index beyond Len valid, while Get is read-only and
// bounds checked.
//
// The zero value is an empty Array using DefaultChunkSize. An Array is not
// safe for concurrent use.
type Array[T any] struct {
	// buf holds the backing storage; len(buf) is the capacity.
	buf []T
	// n is the number of logically valid elements, n <= len(buf).
	n         int
	chunkSize int
}

// New constructs an empty Array.
func New[T any](opts ...Option) (*Array[T], error) {
	cfg := config{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.chunkSize <= 0 {
		return nil, errors.Newf("chunk size must be positive, got %d", cfg.chunkSize)
	}
	return &Array[T]{chunkSize: cfg.chunkSize}, nil
}

// Len returns the number of valid elements.
func (a *Array[T]) Len() int {
	return a.n
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.buf)
}

// ChunkSize returns the growth increment of the Array.
func (a *Array[T]) ChunkSize() int {
	if a.chunkSize <= 0 {
		return DefaultChunkSize
	}
	return a.chunkSize
}

// At returns a pointer to the element at index i, growing the Array when i is
// beyond its capacity and extending Len to i+1 when i is beyond its size.
// Elements between the old size and i are left as the backing storage has
// them; callers must not rely on their contents.
//
// The returned pointer refers into the current backing storage and is only
// valid until the next operation that grows the Array.
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d", i)
	}
	a.grow(i + 1)
	if i >= a.n {
		a.n = i + 1
	}
	return &a.buf[i], nil
}

// Set stores v at index i, growing the Array like At does.
func (a *Array[T]) Set(i int, v T) error {
	p, err := a.At(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Get returns the element at index i. Unlike At it never grows the Array, and
// an index outside of [0, Len()) returns ErrIndexOutOfRange.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.n {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, a.n)
	}
	return a.buf[i], nil
}

// PushBack appends v after the last valid element.
func (a *Array[T]) PushBack(v T) {
	a.grow(a.n + 1)
	a.buf[a.n] = v
	a.n++
}

// Reserve ensures the Array has room for at least n elements. It never
// shrinks the Array.
func (a *Array[T]) Reserve(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidSize, "reserve %d", n)
	}
	a.grow(n)
	return nil
}

// Resize is an alias of Reserve: it adjusts capacity, not Len.
func (a *Array[T]) Resize(n int) error {
	return a.Reserve(n)
}

// Clear releases the backing storage and resets both size and capacity to 0.
func (a *Array[T]) Clear() {
	a.buf = nil
	a.n = 0
}

// Clone returns a deep copy of the Array.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{chunkSize: a.chunkSize}
	c.duplicate(a)
	return c
}

// CopyFrom replaces the contents of a with a copy of src. The chunk size of a
// is retained.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.Clear()
	a.duplicate(src)
}

func (a *Array[T]) duplicate(src *Array[T]) {
	a.grow(src.Cap())
	copy(a.buf, src.buf[:src.n])
	a.n = src.n
}

// Sort sorts the valid elements in place. The sort is not stable.
func (a *Array[T]) Sort(fn callback.SortFunc[T]) {
	slices.SortFunc(a.buf[:a.n], fn)
}

// SortStable sorts the valid elements in place, keeping equal elements in
// their original order.
func (a *Array[T]) SortStable(fn callback.SortFunc[T]) {
	slices.SortStableFunc(a.buf[:a.n], fn)
}

// Find binary searches for key among the valid elements and returns a pointer
// to a matching element. The Array must already be sorted by a function that
// orders elements like fn; otherwise the result is meaningless.
func (a *Array[T]) Find(key T, fn callback.SearchFunc[T]) (*T, bool) {
	i, ok := slices.BinarySearchFunc(a.buf[:a.n], key, fn)
	if !ok {
		return nil, false
	}
	return &a.buf[i], true
}

// Values returns a copy of the valid elements.
func (a *Array[T]) Values() []T {
	if a.n == 0 {
		return nil
	}
	return slices.Clone(a.buf[:a.n])
}

// Each calls fn for every valid element in index order until fn returns
// false.
func (a *Array[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < a.n; i++ {
		if !fn(i, a.buf[i]) {
			return
		}
	}
}

// grow makes room for need slots. The new capacity is the larger of the
// current capacity plus one chunk and need, so that repeated single-slot
// growth reallocates once per chunk while a single large request is still
// satisfied in one step.
func (a *Array[T]) grow(need int) {
	if need <= len(a.buf) {
		return
	}
	newCap := max(len(a.buf)+a.ChunkSize(), need)
	newBuf := make([]T, newCap)
	copy(newBuf, a.buf[:a.n])
	a.buf = newBuf
}
