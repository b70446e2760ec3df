// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"github.com/danos/lens/path"
)

// Get returns the value reached by traversing root along the path, or
// nil when the traversal runs off the value graph. A nil root, a nil
// or non-container value met before the final segment, and a
// genuinely absent leaf all yield nil; none of these are errors. Get
// never mutates root. Get panics if the path does not parse; see
// package path.
func Get(root interface{}, pathStr string) interface{} {
	return GetAt(root, path.New(pathStr))
}

// GetAt is Get over an already parsed path.
func GetAt(root interface{}, p *path.Path) interface{} {
	out, _ := FindAt(root, p)
	return out
}

// Find is like Get but additionally reports whether the leaf was
// actually present, distinguishing a stored nil from a missing key.
func Find(root interface{}, pathStr string) (interface{}, bool) {
	return FindAt(root, path.New(pathStr))
}

// FindAt is Find over an already parsed path.
func FindAt(root interface{}, p *path.Path) (interface{}, bool) {
	cur := root
	for i, n := 0, p.Len(); i < n; i++ {
		c, ok := asContainer(cur)
		if !ok {
			return nil, false
		}
		cur, ok = c.find(p.At(i))
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Contains reports whether the path addresses a value present in
// root.
func Contains(root interface{}, pathStr string) bool {
	return ContainsAt(root, path.New(pathStr))
}

// ContainsAt is Contains over an already parsed path.
func ContainsAt(root interface{}, p *path.Path) bool {
	_, found := FindAt(root, p)
	return found
}
