// Copyright (c) 2021, AT&T Intellectual Property.
//
// SPDX-License-Identifier: MPL-2.0

// Package lens provides bidirectional views over a single mutable
// container. Given a store holding a root value and a dot/bracket
// path such as "name.first" or "items[2]", a View exposes the nested
// value at that path with the same subscribe/read/replace shape as
// the store itself: reads derive the nested value from the store's
// current root, and writes push a new root back into the store. New
// roots are produced by clone-on-write along the path's spine, so the
// previous root and every untouched subtree remain valid and shared;
// nothing is ever mutated in place. Because views satisfy the same
// contract as stores they compose, a view can be the parent of a
// deeper view.
//
// The traversal and update algorithms live in the data subpackage and
// path parsing in the path subpackage; this package ties them to a
// store. Atom is a minimal synchronous store implementation for use
// as the root container.
package lens
