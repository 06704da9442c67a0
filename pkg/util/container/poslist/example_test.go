// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package poslist_test

import (
	"fmt"

	"github.com/cockroachdb/utillib/pkg/util/container/callback"
	"github.com/cockroachdb/utillib/pkg/util/container/poslist"
)

func Example() {
	// Create a new list and put some numbers in it.
	l := poslist.New[int]()
	p4 := l.AddTail(4)
	p1 := l.AddHead(1)
	_, _ = l.InsertBefore(p4, 3)
	_, _ = l.InsertAfter(p1, 2)

	// Iterate through list and print its contents.
	for p := l.HeadPosition(); p.Valid(); {
		v, _ := l.Next(&p)
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
}

func ExampleList_AddSorted() {
	var l poslist.List[string]
	for _, s := range []string{"pear", "Apple", "fig", "apple"} {
		if !l.AddSorted(s, callback.CompareFold, callback.EqualFold) {
			fmt.Println("rejected", s)
		}
	}
	fmt.Println(l.Values())

	// Output:
	// rejected apple
	// [Apple fig pear]
}
