// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package path

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity is the number of parsed paths retained by the
// package's token cache unless CacheCapacity is called.
const DefaultCacheCapacity = 512

// Parsing is on the hot path of every lens read and write and the
// same path string is typically parsed many times, so successful
// parses are memoized in a fixed-capacity LRU keyed by the exact path
// string. The cache is invisible in results; Paths are immutable so
// sharing them is safe.
var cache = struct {
	mu  sync.Mutex
	lru *lru.Cache[string, *Path]
}{lru: mustCache(DefaultCacheCapacity)}

func mustCache(capacity int) *lru.Cache[string, *Path] {
	c, err := lru.New[string, *Path](capacity)
	if err != nil {
		panic(err)
	}
	return c
}

// CacheCapacity resizes the token cache to hold at most n parsed
// paths, evicting least recently used entries as needed. A
// non-positive n disables caching entirely.
func CacheCapacity(n int) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if n <= 0 {
		cache.lru = nil
		return
	}
	cache.lru = mustCache(n)
}

func cacheFind(path string) (*Path, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.lru == nil {
		return nil, false
	}
	return cache.lru.Get(path)
}

func cacheAdd(path string, p *Path) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.lru == nil {
		return
	}
	cache.lru.Add(path, p)
}
