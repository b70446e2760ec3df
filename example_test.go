// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package lens

import (
	"fmt"
	"strings"
)

func ExampleViewNew() {
	store := AtomNew(map[string]interface{}{
		"name": map[string]interface{}{
			"first": "john",
			"last":  "smith",
		},
		"age": 10,
	})
	first := ViewNew(store, "name.first")
	fmt.Println(first.Current())
	first.Set("jane")
	fmt.Println(first.Current())
	last := ViewNew(store, "name.last")
	fmt.Println(last.Current())
	// Output: john
	// jane
	// smith
}

func ExampleView_Update() {
	store := AtomNew([]interface{}{"eat", "sleep", "code", "repeat"})
	item := ViewNew(store, "[2]")
	item.Update(strings.ToUpper)
	fmt.Println(store.Current())
	// Output: [eat sleep CODE repeat]
}

func ExampleView_Subscribe() {
	store := AtomNew(map[string]interface{}{"count": 0})
	count := ViewNew(store, "count")
	unsubscribe := count.Subscribe(func(v interface{}) {
		fmt.Println("count is", v)
	})
	defer unsubscribe()
	count.Update(func(v int) int { return v + 1 })
	// Output: count is 0
	// count is 1
}
