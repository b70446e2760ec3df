// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}

// account and address are Record implementations standing in for
// struct-backed containers whose concrete type must survive writes.
type account struct {
	name    string
	age     int
	address interface{}
}

func (a *account) At(key string) (interface{}, bool) {
	switch key {
	case "name":
		return a.name, true
	case "age":
		return a.age, true
	case "address":
		return a.address, true
	}
	return nil, false
}

func (a *account) Copy() Record {
	out := *a
	return &out
}

func (a *account) Put(key string, value interface{}) {
	switch key {
	case "name":
		a.name, _ = value.(string)
	case "age":
		a.age, _ = value.(int)
	case "address":
		a.address = value
	}
}

type address struct {
	street string
	city   string
}

func (a *address) At(key string) (interface{}, bool) {
	switch key {
	case "street":
		return a.street, true
	case "city":
		return a.city, true
	}
	return nil, false
}

func (a *address) Copy() Record {
	out := *a
	return &out
}

func (a *address) Put(key string, value interface{}) {
	switch key {
	case "street":
		a.street, _ = value.(string)
	case "city":
		a.city, _ = value.(string)
	}
}

func testAccount() *account {
	return &account{
		name: "john",
		age:  10,
		address: &address{
			street: "main st",
			city:   "springfield",
		},
	}
}
