// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"github.com/danos/lens/path"

	"jsouthworth.net/go/dyn"
)

// Assoc associates value at the location the path points to and
// returns the new root. The original root is never modified: every
// container on the spine from root to leaf is shallow-cloned (see
// Clone) and all sibling subtrees remain shared between the old and
// new root. A nil root is returned unchanged; writes into a nullish
// container are no-ops, not errors.
//
// Missing or non-container values met along the spine are replaced by
// fresh containers chosen by the next segment, a sequential container
// for a decimal index and a keyed one otherwise, so writes may extend
// the graph. Writing past the end of a sequential container pads it
// with nils.
func Assoc(root interface{}, pathStr string, value interface{}) interface{} {
	return AssocAt(root, path.New(pathStr), value)
}

// AssocAt is Assoc over an already parsed path.
func AssocAt(root interface{}, p *path.Path, value interface{}) interface{} {
	if root == nil {
		return root
	}
	return assocIn(root, p, 0, value)
}

func assocIn(cur interface{}, p *path.Path, depth int, value interface{}) interface{} {
	token := p.At(depth)
	c, ok := asContainer(cur)
	if !ok || !c.accepts(token) {
		c = emptyContainer(token)
	}
	if depth == p.Len()-1 {
		return c.assoc(token, value)
	}
	child, _ := c.find(token)
	return c.assoc(token, assocIn(child, p, depth+1, value))
}

// Update reads the value the path currently derives from root,
// applies fn to it, and writes the result back through the same
// spine-cloning procedure as Assoc. The read observes the original
// root, never a partially cloned intermediate. fn may be any function
// of one compatible argument, for example func(string) string for a
// string leaf; it is applied through dyn.Apply.
func Update(root interface{}, pathStr string, fn interface{}) interface{} {
	return UpdateAt(root, path.New(pathStr), fn)
}

// UpdateAt is Update over an already parsed path.
func UpdateAt(root interface{}, p *path.Path, fn interface{}) interface{} {
	if root == nil {
		return root
	}
	return AssocAt(root, p, dyn.Apply(fn, GetAt(root, p)))
}

// Delete removes the value the path points to and returns the new
// root. Containers on the spine are shallow-cloned exactly as in
// Assoc. When the path is not present in root, or root is nil, root
// is returned unchanged. Keyed containers drop the leaf key,
// sequential containers splice the element out, and Records have the
// field reset to nil through their Put capability.
func Delete(root interface{}, pathStr string) interface{} {
	return DeleteAt(root, path.New(pathStr))
}

// DeleteAt is Delete over an already parsed path.
func DeleteAt(root interface{}, p *path.Path) interface{} {
	if root == nil || !ContainsAt(root, p) {
		return root
	}
	return deleteIn(root, p, 0)
}

func deleteIn(cur interface{}, p *path.Path, depth int) interface{} {
	c, ok := asContainer(cur)
	if !ok {
		return cur
	}
	token := p.At(depth)
	if depth == p.Len()-1 {
		return c.delete(token)
	}
	child, ok := c.find(token)
	if !ok {
		return cur
	}
	return c.assoc(token, deleteIn(child, p, depth+1))
}
