// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"jsouthworth.net/go/immutable/hashmap"
	"jsouthworth.net/go/immutable/vector"
)

// Clone returns a new container of the same runtime type as v with
// the same top-level contents. The copy is shallow: nested values are
// shared by reference with the source, which is what lets writes
// duplicate only the spine from root to leaf while every untouched
// subtree stays referentially identical across the old and new root.
//
// Maps and slices are copied into fresh containers. Records are
// copied through their Copy capability, so the concrete type is
// preserved and no constructor runs. Persistent containers
// (hashmap.Map, vector.Vector) are returned unchanged since no
// operation in this package ever mutates them. Any other value is a
// leaf and is returned as-is.
func Clone(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, elem := range val {
			out[k] = elem
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		copy(out, val)
		return out
	case Record:
		return val.Copy()
	case *hashmap.Map:
		return val
	case *vector.Vector:
		return val
	default:
		return v
	}
}
