// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/utillib/pkg/util/container/callback"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func checkInvariants[T any](t *testing.T, a *Array[T]) {
	t.Helper()
	require.LessOrEqual(t, a.Len(), a.Cap())
	require.Len(t, a.buf, a.Cap())
	if a.Cap() == 0 {
		require.Nil(t, a.buf)
	}
}

func TestArrayGrowth(t *testing.T) {
	var a Array[int]
	require.Equal(t, DefaultChunkSize, a.ChunkSize())
	checkInvariants(t, &a)

	// The first push allocates one chunk.
	a.PushBack(1)
	require.Equal(t, 1, a.Len())
	require.Equal(t, DefaultChunkSize, a.Cap())
	// Pushes within the chunk use the already allocated capacity.
	for i := 1; i < DefaultChunkSize; i++ {
		a.PushBack(i + 1)
	}
	require.Equal(t, DefaultChunkSize, a.Cap())
	// Filling the chunk grows by exactly one more chunk.
	a.PushBack(0)
	require.Equal(t, 2*DefaultChunkSize, a.Cap())
	// A request past the next chunk is satisfied in one step.
	require.NoError(t, a.Reserve(5*DefaultChunkSize+1))
	require.Equal(t, 5*DefaultChunkSize+1, a.Cap())
	checkInvariants(t, &a)

	for i := 0; i < DefaultChunkSize; i++ {
		v, err := a.Get(i)
		require.NoError(t, err)
		require.Equal(t, i+1, v)
	}
}

func TestArrayReserveThenAt(t *testing.T) {
	a, err := New[string]()
	require.NoError(t, err)
	require.NoError(t, a.Reserve(250))
	require.Equal(t, 250, a.Cap())
	require.Equal(t, 0, a.Len())

	p, err := a.At(300)
	require.NoError(t, err)
	*p = "x"
	require.GreaterOrEqual(t, a.Cap(), 301)
	require.Equal(t, 301, a.Len())

	v, err := a.Get(300)
	require.NoError(t, err)
	require.Equal(t, "x", v)
	checkInvariants(t, a)
}

func TestArrayAtWithinSize(t *testing.T) {
	a, err := New[int](WithChunkSize(4))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		a.PushBack(i)
	}
	// Access inside the valid range neither grows nor extends.
	p, err := a.At(1)
	require.NoError(t, err)
	*p = 10
	require.Equal(t, 3, a.Len())
	require.Equal(t, 4, a.Cap())
	require.Equal(t, []int{0, 10, 2}, a.Values())

	// Access between size and capacity extends size without growing.
	_, err = a.At(3)
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	require.Equal(t, 4, a.Cap())
}

func TestArrayBounds(t *testing.T) {
	var a Array[int]
	_, err := a.Get(0)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Equal(t, 0, a.Cap(), "Get must not grow")

	_, err = a.At(-3)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Error(t, a.Set(-1, 5))
	require.True(t, errors.Is(a.Reserve(-1), ErrInvalidSize))
	require.True(t, errors.Is(a.Resize(-1), ErrInvalidSize))

	a.PushBack(7)
	_, err = a.Get(1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Contains(t, err.Error(), "index 1, length 1")
}

func TestArrayNewRejectsChunkSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		a, err := New[int](WithChunkSize(n))
		require.Error(t, err)
		require.Nil(t, a)
	}
	a, err := New[int](WithChunkSize(1))
	require.NoError(t, err)
	require.Equal(t, 1, a.ChunkSize())
}

func TestArrayClear(t *testing.T) {
	var a Array[int]
	for i := 0; i < 150; i++ {
		a.PushBack(i)
	}
	a.Clear()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	checkInvariants(t, &a)
	// The array is reusable after Clear.
	a.PushBack(3)
	require.Equal(t, []int{3}, a.Values())
}

func TestArrayCopyIndependence(t *testing.T) {
	a, err := New[int](WithChunkSize(8))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		a.PushBack(i)
	}

	b := a.Clone()
	require.Equal(t, a.Values(), b.Values())
	require.Equal(t, a.Cap(), b.Cap())
	require.Equal(t, a.ChunkSize(), b.ChunkSize())

	require.NoError(t, a.Set(0, 100))
	a.PushBack(99)
	require.NoError(t, b.Set(1, -1))
	v, err := b.Get(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	v, err = a.Get(1)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 20, b.Len())

	// CopyFrom clears the destination first.
	var c Array[int]
	for i := 0; i < 50; i++ {
		c.PushBack(-i)
	}
	c.CopyFrom(b)
	if diff := cmp.Diff(b.Values(), c.Values()); diff != "" {
		t.Fatalf("unexpected copy (-want +got):\n%s", diff)
	}
	c.CopyFrom(&c)
	require.Equal(t, b.Values(), c.Values())

	// Copying an empty array allocates nothing.
	var empty Array[int]
	c.CopyFrom(&empty)
	require.Equal(t, 0, c.Len())
	require.Equal(t, 0, c.Cap())
}

func TestArraySortAndFind(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var a Array[int]
	for _, v := range rng.Perm(500) {
		a.PushBack(v * 2)
	}
	a.Sort(callback.Ordered[int])
	prev := -1
	a.Each(func(i int, v int) bool {
		require.Greater(t, v, prev)
		prev = v
		return true
	})
	for _, key := range []int{0, 2, 500, 998} {
		p, ok := a.Find(key, callback.Ordered[int])
		require.True(t, ok, "key %d", key)
		require.Equal(t, key, *p)
	}
	for _, key := range []int{-1, 1, 999, 1000} {
		_, ok := a.Find(key, callback.Ordered[int])
		require.False(t, ok, "key %d", key)
	}

	// The pointer returned by Find refers to the element itself.
	p, ok := a.Find(10, callback.Ordered[int])
	require.True(t, ok)
	*p = 11
	v, err := a.Get(5)
	require.NoError(t, err)
	require.Equal(t, 11, v)
}

func TestArraySortStableFold(t *testing.T) {
	var a Array[string]
	for _, s := range []string{"b", "A", "a", "B", "c"} {
		a.PushBack(s)
	}
	a.SortStable(callback.CompareFold)
	require.Equal(t, []string{"A", "a", "b", "B", "c"}, a.Values())
	p, ok := a.Find("C", callback.CompareFold)
	require.True(t, ok)
	require.Equal(t, "c", *p)
}

func TestArrayEachStops(t *testing.T) {
	var a Array[string]
	for _, s := range strings.Fields("a b c d") {
		a.PushBack(s)
	}
	var seen []string
	a.Each(func(i int, v string) bool {
		seen = append(seen, v)
		return i < 1
	})
	require.Equal(t, []string{"a", "b"}, seen)
}

func BenchmarkArrayPushBack(b *testing.B) {
	for _, chunk := range []int{1, DefaultChunkSize, 10000} {
		b.Run(fmt.Sprintf("chunk=%d", chunk), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a, _ := New[int](WithChunkSize(chunk))
				for j := 0; j < 1000; j++ {
					a.PushBack(j)
				}
			}
		})
	}
}
