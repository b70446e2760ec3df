// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package lens

import (
	"sync"

	"jsouthworth.net/go/dyn"
)

// AtomNew creates an Atom holding the supplied initial value.
func AtomNew(initial interface{}) *Atom {
	return &Atom{value: initial}
}

// Atom is a minimal synchronous Store: one current value, replaced
// wholesale, with subscribers notified in subscription order on every
// replacement. It is the reference collaborator for views and is
// deliberately not a general event system; notifications are
// delivered synchronously on the goroutine that called Replace, and
// replacements apply strictly in call order.
type Atom struct {
	mu    sync.Mutex
	value interface{}
	subs  []*subscription
	next  int
}

type subscription struct {
	id       int
	listener func(interface{})
}

var _ Store = (*Atom)(nil)

// Current returns the atom's current value.
func (a *Atom) Current() interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Replace swaps in a new value and notifies every subscriber with it.
func (a *Atom) Replace(value interface{}) {
	a.mu.Lock()
	a.value = value
	listeners := a.snapshotLocked()
	a.mu.Unlock()
	for _, listener := range listeners {
		listener(value)
	}
}

// Swap replaces the atom's value with the result of applying fn to
// the current value. fn may be any function of one compatible
// argument; it is applied through dyn.Apply.
func (a *Atom) Swap(fn interface{}) {
	a.mu.Lock()
	a.value = dyn.Apply(fn, a.value)
	value := a.value
	listeners := a.snapshotLocked()
	a.mu.Unlock()
	for _, listener := range listeners {
		listener(value)
	}
}

// Subscribe registers a listener. The listener is invoked immediately
// with the current value and again after every replacement. The
// returned function cancels the subscription.
func (a *Atom) Subscribe(listener func(interface{})) func() {
	a.mu.Lock()
	a.next++
	sub := &subscription{id: a.next, listener: listener}
	a.subs = append(a.subs, sub)
	value := a.value
	a.mu.Unlock()
	listener(value)
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for i, s := range a.subs {
			if s.id == sub.id {
				a.subs = append(a.subs[:i], a.subs[i+1:]...)
				return
			}
		}
	}
}

func (a *Atom) snapshotLocked() []func(interface{}) {
	out := make([]func(interface{}), len(a.subs))
	for i, s := range a.subs {
		out[i] = s.listener
	}
	return out
}
