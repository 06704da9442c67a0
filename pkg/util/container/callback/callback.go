// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package callback defines the caller-supplied function shapes that the
// container packages accept, along with a few stock implementations.
//
// The containers never construct a callback themselves; they only invoke the
// ones they are handed.
package callback

import (
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
)

// SortFunc is a three-way comparison used to order elements. It returns a
// negative number when a sorts before b, zero when they are equivalent and a
// positive number when a sorts after b.
type SortFunc[T any] func(a, b T) int

// SearchFunc is a three-way comparison used to binary search a sorted
// container. It must order elements exactly like the SortFunc that was used to
// sort the container.
type SearchFunc[T any] func(a, b T) int

// DuplicateFunc reports whether a should be treated as a duplicate of b.
type DuplicateFunc[T any] func(a, b T) bool

// ApplyFunc is invoked once per line by line-oriented drivers (see
// pkg/util/lineio). The data argument is passed through untouched. Returning
// false stops the driver.
type ApplyFunc func(line string, data any) bool

// Ordered is a SortFunc for any ordered type.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal is a DuplicateFunc that treats equal values as duplicates.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// Reverse inverts the order produced by fn.
func Reverse[T any](fn SortFunc[T]) SortFunc[T] {
	return func(a, b T) int {
		return fn(b, a)
	}
}

// CompareFold compares two strings ignoring case.
func CompareFold(a, b string) int {
	return strings.Compare(fold(a), fold(b))
}

// EqualFold is the DuplicateFunc counterpart of CompareFold.
func EqualFold(a, b string) bool {
	return CompareFold(a, b) == 0
}

// fold returns the case-folded form of s. Casers carry state, so a fresh one
// is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
