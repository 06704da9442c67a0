// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package poslist

import (
	"reflect"

	"github.com/cockroachdb/utillib/pkg/util/container/callback"
)

// AddSorted inserts item so that a list built only through AddSorted stays in
// ascending order under sortFn, and reports whether item was inserted.
//
// The list is scanned from the head. If dupFn is non-nil and reports item a
// duplicate of an existing element, nothing is inserted and false is
// returned; the caller keeps ownership of item. Otherwise item is inserted
// before the first element it sorts before, or at the tail if there is none.
// A nil sortFn appends item unconditionally. A nil item (nil pointer, channel
// or interface) is never inserted.
//
// A false return is an expected outcome, not an error.
func (l *List[T]) AddSorted(
	item T, sortFn callback.SortFunc[T], dupFn callback.DuplicateFunc[T],
) bool {
	if isNil(item) {
		return false
	}
	if sortFn != nil {
		for r, i := l.head, 0; r != nilRef && i < l.count; i++ {
			n := l.at(r)
			test := n.value
			if dupFn != nil && dupFn(item, test) {
				return false
			}
			if sortFn(item, test) < 0 {
				l.insertBefore(r, item)
				return true
			}
			r = n.next
		}
	}
	l.AddTail(item)
	return true
}

func isNil[T any](v T) bool {
	iv := any(v)
	if iv == nil {
		return true
	}
	switch rv := reflect.ValueOf(iv); rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
