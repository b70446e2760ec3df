// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package lens

import (
	"reflect"

	"github.com/danos/lens/data"
	"github.com/danos/lens/path"
)

// Store is the container contract a view binds to. A store owns a
// single current value, replaces it wholesale, and notifies
// subscribers of every replacement. Subscribe must invoke the
// listener with the current value immediately and return a function
// that cancels the subscription.
type Store interface {
	Subscribe(listener func(interface{})) func()
	Current() interface{}
	Replace(value interface{})
}

// ViewNew creates a read/write view onto the nested location the path
// addresses within the parent store's value. The path is parsed and
// validated eagerly; ViewNew panics with a *path.Error if it is
// malformed or names a forbidden property. Use path.Parse followed by
// ViewFromPath for the error returning form.
func ViewNew(parent Store, pathStr string, options ...ViewOption) *View {
	return ViewFromPath(parent, path.New(pathStr), options...)
}

// ViewFromPath creates a view from an already parsed path.
func ViewFromPath(parent Store, p *path.Path, options ...ViewOption) *View {
	view := &View{
		parent: parent,
		path:   p,
	}
	for _, option := range options {
		option(view)
	}
	return view
}

// ViewOption is a constructor for the optional behaviors of a View.
type ViewOption func(*View)

// Distinct produces a ViewOption that suppresses subscriber
// notifications whose derived value is unchanged from the previous
// notification. New values are still delivered immediately; only
// duplicates are dropped.
func Distinct() ViewOption {
	return func(v *View) {
		v.distinct = true
	}
}

// View is a derived read/write handle onto a nested location within a
// parent store. Its value is always the parent's current value
// traversed along the view's path; it holds no state of its own
// beyond the parent reference and the path, so every read re-derives
// from the parent. View itself satisfies Store, which lets views
// stack as parents of further views or stand in for any consumer of
// the container shape.
type View struct {
	parent   Store
	path     *path.Path
	distinct bool
}

var _ Store = (*View)(nil)

// Path returns the path the view derives through.
func (v *View) Path() *path.Path {
	return v.path
}

// Current returns the derived value for the parent's current value.
func (v *View) Current() interface{} {
	return data.GetAt(v.parent.Current(), v.path)
}

// Subscribe registers a listener for the derived value. The listener
// fires once immediately and then on every parent emission, whether
// or not the derived value changed, unless the view was built with
// Distinct. The returned function cancels the subscription.
func (v *View) Subscribe(listener func(interface{})) func() {
	if !v.distinct {
		return v.parent.Subscribe(func(root interface{}) {
			listener(data.GetAt(root, v.path))
		})
	}
	var seen bool
	var prev interface{}
	return v.parent.Subscribe(func(root interface{}) {
		derived := data.GetAt(root, v.path)
		if seen && reflect.DeepEqual(prev, derived) {
			return
		}
		seen, prev = true, derived
		listener(derived)
	})
}

// Set writes value at the view's location by replacing the parent's
// value with a new one produced by spine-wise clone-on-write; the
// parent's previous value is left untouched. When the parent's
// current value is nil the write is a no-op and no notification
// fires.
func (v *View) Set(value interface{}) {
	root := v.parent.Current()
	if root == nil {
		return
	}
	v.parent.Replace(data.AssocAt(root, v.path, value))
}

// Update transforms the value at the view's location. fn is applied
// to the derived value read from the parent's current value before
// any cloning happens; it may be any function of one compatible
// argument, for example func(string) string for a string leaf. As
// with Set, a nil parent value makes Update a no-op.
func (v *View) Update(fn interface{}) {
	root := v.parent.Current()
	if root == nil {
		return
	}
	v.parent.Replace(data.UpdateAt(root, v.path, fn))
}

// Replace is Set under the name the Store contract requires.
func (v *View) Replace(value interface{}) {
	v.Set(value)
}
