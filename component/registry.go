// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import "sync"

// Factory constructs a fresh, zeroed Component of a given kind.
type Factory func() Component

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register associates a kind name with a Factory. Application code
// calls Register to add user-extensible component kinds beyond the
// six built into this package; re-registering an existing kind
// replaces it, which is how callers can swap a built-in for an
// alternative implementation (e.g. a higher-resolution clock).
func Register(kind string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = f
}

// New constructs a fresh Component of the named kind. ok is false if
// kind was never registered.
func New(kind string) (c Component, ok bool) {
	registryMu.RLock()
	f, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// Kinds returns the names of every registered kind, in no particular
// order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}

func init() {
	Register("wall_clock", func() Component { return NewWallClock() })
	Register("cpu_clock", func() Component { return NewCPUClock() })
	Register("user_time", func() Component { return NewUserTime() })
	Register("system_time", func() Component { return NewSystemTime() })
	Register("cpu_util", func() Component { return NewCPUUtil() })
	Register("peak_rss", func() Component { return NewPeakRSS() })
}
