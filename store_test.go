// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package lens

import (
	"strings"
	"testing"
)

func TestAtomCurrent(t *testing.T) {
	atom := AtomNew(10)
	assert(atom.Current() == 10, func() {
		t.Fatalf("expected 10, got %v\n", atom.Current())
	})
	atom.Replace(11)
	assert(atom.Current() == 11, func() {
		t.Fatalf("expected 11, got %v\n", atom.Current())
	})
}

func TestAtomSubscribe(t *testing.T) {
	atom := AtomNew("a")
	var got []interface{}
	unsubscribe := atom.Subscribe(func(v interface{}) {
		got = append(got, v)
	})
	atom.Replace("b")
	unsubscribe()
	atom.Replace("c")
	assert(len(got) == 2 && got[0] == "a" && got[1] == "b", func() {
		t.Fatalf("expected [a b], got %v\n", got)
	})
}

func TestAtomNotifiesInSubscriptionOrder(t *testing.T) {
	atom := AtomNew(0)
	var order []string
	defer atom.Subscribe(func(interface{}) {
		order = append(order, "first")
	})()
	defer atom.Subscribe(func(interface{}) {
		order = append(order, "second")
	})()
	order = nil
	atom.Replace(1)
	assert(len(order) == 2 &&
		order[0] == "first" && order[1] == "second", func() {
		t.Fatalf("expected subscription order, got %v\n", order)
	})
}

func TestAtomSwap(t *testing.T) {
	atom := AtomNew("code")
	var got []interface{}
	defer atom.Subscribe(func(v interface{}) {
		got = append(got, v)
	})()
	atom.Swap(strings.ToUpper)
	assert(atom.Current() == "CODE", func() {
		t.Fatalf("expected CODE, got %v\n", atom.Current())
	})
	assert(len(got) == 2 && got[1] == "CODE", func() {
		t.Fatalf("expected the swap to notify, got %v\n", got)
	})
}

func TestAtomUnsubscribeDuringOtherSubscriptions(t *testing.T) {
	atom := AtomNew(0)
	var first, second int
	cancel := atom.Subscribe(func(interface{}) { first++ })
	defer atom.Subscribe(func(interface{}) { second++ })()
	cancel()
	atom.Replace(1)
	assert(first == 1 && second == 2, func() {
		t.Fatalf("expected (1, 2), got (%v, %v)\n", first, second)
	})
}
