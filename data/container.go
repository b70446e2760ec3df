// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"strconv"

	"jsouthworth.net/go/immutable/hashmap"
	"jsouthworth.net/go/immutable/vector"
)

// Record is the capability interface for struct-backed containers
// that participate in traversal and updates while keeping their
// concrete type across writes. Copy must produce a shallow copy of
// the same concrete type without re-running any constructor logic;
// Put is only ever invoked on values produced by Copy, never on a
// value supplied by the caller.
type Record interface {
	At(key string) (interface{}, bool)
	Copy() Record
	Put(key string, value interface{})
}

// container is the closed variant every traversal step operates on. A
// value is one of {keyed container, indexed container, nil, leaf};
// the first two are represented by the adapters below and the rest
// fail the asContainer conversion.
type container interface {
	// find reads the child named by the token, reporting whether
	// it exists.
	find(token string) (interface{}, bool)
	// assoc returns a new container value with the token's slot
	// replaced. The receiver is never mutated.
	assoc(token string, value interface{}) interface{}
	// delete returns a new container value without the token's
	// slot, or the original value when the token is absent.
	delete(token string) interface{}
	// accepts reports whether the token can address a slot in
	// this container at all.
	accepts(token string) bool
}

func asContainer(v interface{}) (container, bool) {
	switch val := v.(type) {
	case map[string]interface{}:
		if val == nil {
			return nil, false
		}
		return mapContainer(val), true
	case []interface{}:
		return sliceContainer(val), true
	case *hashmap.Map:
		if val == nil {
			return nil, false
		}
		return hashmapContainer{val}, true
	case *vector.Vector:
		if val == nil {
			return nil, false
		}
		return vectorContainer{val}, true
	case Record:
		return recordContainer{val}, true
	default:
		return nil, false
	}
}

// emptyContainer returns a fresh container suited to the token that
// will be written into it: decimal tokens get a sequential container,
// anything else a keyed one.
func emptyContainer(token string) container {
	if _, isIndex := parseIndex(token); isIndex {
		return sliceContainer(nil)
	}
	return mapContainer(nil)
}

func parseIndex(token string) (int, bool) {
	i, err := strconv.Atoi(token)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

type mapContainer map[string]interface{}

func (m mapContainer) accepts(string) bool { return true }

func (m mapContainer) find(token string) (interface{}, bool) {
	v, ok := m[token]
	return v, ok
}

func (m mapContainer) assoc(token string, value interface{}) interface{} {
	out := make(map[string]interface{}, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[token] = value
	return out
}

func (m mapContainer) delete(token string) interface{} {
	if _, ok := m[token]; !ok {
		return map[string]interface{}(m)
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k != token {
			out[k] = v
		}
	}
	return out
}

type sliceContainer []interface{}

func (s sliceContainer) accepts(token string) bool {
	_, isIndex := parseIndex(token)
	return isIndex
}

func (s sliceContainer) find(token string) (interface{}, bool) {
	i, isIndex := parseIndex(token)
	if !isIndex || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

func (s sliceContainer) assoc(token string, value interface{}) interface{} {
	i, _ := parseIndex(token)
	length := len(s)
	if i >= length {
		// Writes past the end pad the copy with nils up to the
		// index being written.
		length = i + 1
	}
	out := make([]interface{}, length)
	copy(out, s)
	out[i] = value
	return out
}

func (s sliceContainer) delete(token string) interface{} {
	i, isIndex := parseIndex(token)
	if !isIndex || i >= len(s) {
		return []interface{}(s)
	}
	out := make([]interface{}, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

// hashmapContainer adapts jsouthworth.net/go/immutable/hashmap. The
// store is persistent, so assoc and delete are the store's own
// structurally shared operations and no copying is required.
type hashmapContainer struct {
	store *hashmap.Map
}

func (h hashmapContainer) accepts(string) bool { return true }

func (h hashmapContainer) find(token string) (interface{}, bool) {
	return h.store.Find(token)
}

func (h hashmapContainer) assoc(token string, value interface{}) interface{} {
	return h.store.Assoc(token, value)
}

func (h hashmapContainer) delete(token string) interface{} {
	return h.store.Delete(token)
}

// vectorContainer adapts jsouthworth.net/go/immutable/vector.
type vectorContainer struct {
	store *vector.Vector
}

func (v vectorContainer) accepts(token string) bool {
	_, isIndex := parseIndex(token)
	return isIndex
}

func (v vectorContainer) find(token string) (interface{}, bool) {
	i, isIndex := parseIndex(token)
	if !isIndex || i >= v.store.Length() {
		return nil, false
	}
	return v.store.Find(i)
}

func (v vectorContainer) assoc(token string, value interface{}) interface{} {
	i, _ := parseIndex(token)
	store := v.store
	for n := store.Length(); n < i+1; n++ {
		store = store.Append(nil)
	}
	return store.Assoc(i, value)
}

func (v vectorContainer) delete(token string) interface{} {
	i, isIndex := parseIndex(token)
	if !isIndex || i >= v.store.Length() {
		return v.store
	}
	return v.store.Delete(i)
}

type recordContainer struct {
	record Record
}

func (r recordContainer) accepts(string) bool { return true }

func (r recordContainer) find(token string) (interface{}, bool) {
	return r.record.At(token)
}

func (r recordContainer) assoc(token string, value interface{}) interface{} {
	out := r.record.Copy()
	out.Put(token, value)
	return out
}

func (r recordContainer) delete(token string) interface{} {
	out := r.record.Copy()
	out.Put(token, nil)
	return out
}
