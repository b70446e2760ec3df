// Copyright (c) 2021, AT&T Intellectual Property.
//
// SPDX-License-Identifier: MPL-2.0

// Package data implements safe nested access over arbitrary value
// graphs addressed by parsed paths. Reads walk the graph with
// optional-chaining semantics: a nil root or a missing intermediate
// yields nil rather than an error. Writes never modify the supplied
// root; they return a new root in which only the chain of containers
// from the root to the written leaf has been shallow-cloned, leaving
// every untouched subtree shared by reference between the two roots.
//
// Traversal and updates operate on a closed set of container shapes:
// map[string]interface{} and []interface{} for native values,
// hashmap.Map and vector.Vector from jsouthworth.net/go/immutable for
// values that want persistent structural sharing all the way down,
// and any type implementing Record for struct-backed containers that
// must keep their concrete type across writes. Everything else is a
// leaf.
package data
