// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package poslist

import "github.com/cockroachdb/errors"

// ref addresses a node in the arena. It is the index plus one so that the
// zero value means "none".
type ref int32

const nilRef ref = 0

type node[T comparable] struct {
	value T
	prev  ref
	next  ref
	// gen is bumped every time the slot is released, which is what lets
	// resolve tell a live Position from a stale one.
	gen  uint32
	live bool
}

// List is a doubly-linked list that hands out Position handles to its nodes.
//
// The list owns every node. Nodes are kept in an arena (a slice plus a free
// list), and the prev/next links are arena references rather than pointers.
// A Position held by a caller never keeps a node alive; the list alone
// decides node lifetime.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use (use Clone or CopyFrom), and is not safe for concurrent
// use.
type List[T comparable] struct {
	nodes []node[T]
	free  []ref
	head  ref
	tail  ref
	count int
	// epoch is assigned lazily on first allocation and reset by RemoveAll, so
	// positions from a previous incarnation can never alias new nodes.
	epoch uint64
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.count
}

// Empty returns whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.count == 0
}

// Head returns the first element.
func (l *List[T]) Head() (T, error) {
	if l.head == nilRef {
		var zero T
		return zero, ErrEmpty
	}
	return l.at(l.head).value, nil
}

// Tail returns the last element.
func (l *List[T]) Tail() (T, error) {
	if l.tail == nilRef {
		var zero T
		return zero, ErrEmpty
	}
	return l.at(l.tail).value, nil
}

// HeadPosition returns the position of the first element, or NoPosition.
func (l *List[T]) HeadPosition() Position {
	return l.pos(l.head)
}

// TailPosition returns the position of the last element, or NoPosition.
func (l *List[T]) TailPosition() Position {
	return l.pos(l.tail)
}

// Next returns the element at *p and advances *p to the following node.
// Advancing past the tail, or onto the head, sets *p to NoPosition.
func (l *List[T]) Next(p *Position) (T, error) {
	r, err := l.resolve(*p)
	if err != nil {
		var zero T
		return zero, err
	}
	n := l.at(r)
	next := n.next
	if next == l.head {
		next = nilRef
	}
	*p = l.pos(next)
	return n.value, nil
}

// Prev returns the element at *p and moves *p to the preceding node.
// Moving past the head, or onto the tail, sets *p to NoPosition.
func (l *List[T]) Prev(p *Position) (T, error) {
	r, err := l.resolve(*p)
	if err != nil {
		var zero T
		return zero, err
	}
	n := l.at(r)
	prev := n.prev
	if prev == l.tail {
		prev = nilRef
	}
	*p = l.pos(prev)
	return n.value, nil
}

// AddHead inserts v at the front of the list.
func (l *List[T]) AddHead(v T) Position {
	r := l.alloc(v)
	n := l.at(r)
	n.next = l.head
	if l.head == nilRef {
		l.tail = r
	} else {
		l.at(l.head).prev = r
	}
	l.head = r
	l.count++
	return l.pos(r)
}

// AddTail inserts v at the back of the list.
func (l *List[T]) AddTail(v T) Position {
	r := l.alloc(v)
	n := l.at(r)
	n.prev = l.tail
	if l.tail == nilRef {
		l.head = r
	} else {
		l.at(l.tail).next = r
	}
	l.tail = r
	l.count++
	return l.pos(r)
}

// InsertBefore inserts v immediately before the node at p and returns the
// position of the new node. An empty list has no valid positions; use AddHead
// or AddTail instead.
func (l *List[T]) InsertBefore(p Position, v T) (Position, error) {
	before, err := l.resolve(p)
	if err != nil {
		return NoPosition, err
	}
	return l.pos(l.insertBefore(before, v)), nil
}

func (l *List[T]) insertBefore(before ref, v T) ref {
	r := l.alloc(v)
	n, b := l.at(r), l.at(before)
	n.prev = b.prev
	n.next = before
	if b.prev != nilRef {
		l.at(b.prev).next = r
	}
	b.prev = r
	if before == l.head {
		l.head = r
	}
	l.count++
	return r
}

// InsertAfter inserts v immediately after the node at p and returns the
// position of the new node.
func (l *List[T]) InsertAfter(p Position, v T) (Position, error) {
	after, err := l.resolve(p)
	if err != nil {
		return NoPosition, err
	}
	r := l.alloc(v)
	n, a := l.at(r), l.at(after)
	n.prev = after
	n.next = a.next
	if a.next != nilRef {
		l.at(a.next).prev = r
	}
	a.next = r
	if after == l.tail {
		l.tail = r
	}
	l.count++
	return l.pos(r), nil
}

// RemoveAt unlinks the node at p and returns its value. p, and any copy of
// it, becomes stale.
func (l *List[T]) RemoveAt(p Position) (T, error) {
	r, err := l.resolve(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(r), nil
}

// RemoveHead removes and returns the first element. Together with AddHead it
// gives stack behavior.
func (l *List[T]) RemoveHead() (T, error) {
	if l.head == nilRef {
		var zero T
		return zero, ErrEmpty
	}
	return l.unlink(l.head), nil
}

// RemoveTail removes and returns the last element. Together with AddHead it
// gives queue behavior.
func (l *List[T]) RemoveTail() (T, error) {
	if l.tail == nilRef {
		var zero T
		return zero, ErrEmpty
	}
	return l.unlink(l.tail), nil
}

// RemoveAll removes every element. All outstanding positions become stale.
func (l *List[T]) RemoveAll() {
	*l = List[T]{}
}

// Find returns the position of the first element equal to v.
func (l *List[T]) Find(v T) (Position, bool) {
	for r, i := l.head, 0; r != nilRef && i < l.count; i++ {
		n := l.at(r)
		if n.value == v {
			return l.pos(r), true
		}
		r = n.next
	}
	return NoPosition, false
}

// FindValue returns the first element equal to v.
func (l *List[T]) FindValue(v T) (T, bool) {
	if p, ok := l.Find(v); ok {
		return l.at(ref(p.slot)).value, true
	}
	var zero T
	return zero, false
}

// ValueAt returns the element at p. Unlike FindValue it matches by position
// identity, not by value.
func (l *List[T]) ValueAt(p Position) (T, error) {
	r, err := l.resolve(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.at(r).value, nil
}

// AppendList appends a copy of every element of other, in order, to the back
// of l. Appending a list to itself doubles it.
func (l *List[T]) AppendList(other *List[T]) {
	r := other.head
	for i, n := 0, other.count; i < n && r != nilRef; i++ {
		src := other.at(r)
		v, next := src.value, src.next
		l.AddTail(v)
		r = next
	}
}

// CopyFrom replaces the contents of l with a copy of src. Positions into the
// old contents of l become stale.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}
	l.RemoveAll()
	l.AppendList(src)
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.AppendList(l)
	return c
}

// Values returns the elements in head-to-tail order.
func (l *List[T]) Values() []T {
	if l.count == 0 {
		return nil
	}
	vals := make([]T, 0, l.count)
	l.Each(func(v T) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Each calls fn for every element in head-to-tail order until fn returns
// false.
func (l *List[T]) Each(fn func(v T) bool) {
	for r, i := l.head, 0; r != nilRef && i < l.count; i++ {
		n := l.at(r)
		if !fn(n.value) {
			return
		}
		r = n.next
	}
}

func (l *List[T]) at(r ref) *node[T] {
	return &l.nodes[r-1]
}

func (l *List[T]) pos(r ref) Position {
	if r == nilRef {
		return NoPosition
	}
	return Position{epoch: l.epoch, slot: int32(r), gen: l.at(r).gen}
}

// resolve maps p back to a live node of this list.
func (l *List[T]) resolve(p Position) (ref, error) {
	if !p.Valid() {
		return nilRef, ErrNoPosition
	}
	if p.epoch != l.epoch || p.slot < 0 || int(p.slot) > len(l.nodes) {
		return nilRef, errors.Wrapf(ErrStalePosition, "%s does not belong to this list", p)
	}
	r := ref(p.slot)
	if n := l.at(r); !n.live || n.gen != p.gen {
		return nilRef, errors.Wrapf(ErrStalePosition, "%s was removed", p)
	}
	return r, nil
}

// alloc takes a slot from the free list, or grows the arena. Growing the
// arena may move it, so callers must not hold node pointers across alloc.
func (l *List[T]) alloc(v T) ref {
	if l.epoch == 0 {
		l.epoch = nextEpoch()
	}
	if n := len(l.free); n > 0 {
		r := l.free[n-1]
		l.free = l.free[:n-1]
		nd := l.at(r)
		nd.value, nd.prev, nd.next, nd.live = v, nilRef, nilRef, true
		return r
	}
	l.nodes = append(l.nodes, node[T]{value: v, live: true})
	return ref(len(l.nodes))
}

// unlink detaches r from the chain, releases its slot and returns the value
// it held.
func (l *List[T]) unlink(r ref) T {
	n := l.at(r)
	if l.head == r {
		l.head = n.next
	}
	if l.tail == r {
		l.tail = n.prev
	}
	if n.prev != nilRef {
		l.at(n.prev).next = n.next
	}
	if n.next != nilRef {
		l.at(n.next).prev = n.prev
	}
	l.count--

	v := n.value
	var zero T
	n.value, n.prev, n.next, n.live = zero, nilRef, nilRef, false
	n.gen++
	l.free = append(l.free, r)
	return v
}

// verify checks the structural invariants of the list.
func (l *List[T]) verify() error {
	if l.count == 0 {
		if l.head != nilRef || l.tail != nilRef {
			return errors.AssertionFailedf("empty list with head %d, tail %d", l.head, l.tail)
		}
		return nil
	}
	if l.head == nilRef || l.tail == nilRef {
		return errors.AssertionFailedf("list of %d with head %d, tail %d", l.count, l.head, l.tail)
	}
	if p := l.at(l.head).prev; p != nilRef {
		return errors.AssertionFailedf("head has prev %d", p)
	}
	if n := l.at(l.tail).next; n != nilRef {
		return errors.AssertionFailedf("tail has next %d", n)
	}
	seen := 0
	var prev ref
	for r := l.head; r != nilRef; r = l.at(r).next {
		n := l.at(r)
		if !n.live {
			return errors.AssertionFailedf("released slot %d is linked", r)
		}
		if n.prev != prev {
			return errors.AssertionFailedf("slot %d has prev %d, expected %d", r, n.prev, prev)
		}
		seen++
		if seen > l.count {
			return errors.AssertionFailedf("chain longer than count %d", l.count)
		}
		prev = r
	}
	if prev != l.tail {
		return errors.AssertionFailedf("chain ends at %d, tail is %d", prev, l.tail)
	}
	if seen != l.count {
		return errors.AssertionFailedf("chain has %d nodes, count is %d", seen, l.count)
	}
	if live := len(l.nodes) - len(l.free); live != l.count {
		return errors.AssertionFailedf("arena has %d live slots, count is %d", live, l.count)
	}
	return nil
}
