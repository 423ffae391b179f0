// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bundle implements a compile-time-composed, heterogeneous
// component collection. Go has no variadic generics, so components are
// held behind the component.Component interface in a small slice, and
// arity/kinds are fixed at construction — never mutated afterward.
package bundle

import (
	"fmt"
	"io"
	"strings"

	"github.com/perfscope/perfscope/component"
	"github.com/perfscope/perfscope/identity"
)

// Bundle is an ordered, fixed, heterogeneous tuple of components
// determined at construction. Every operation broadcasts to every
// contained component; laps is maintained by Bundle itself, not by
// the individual components.
type Bundle struct {
	key      string
	tag      string
	depth    int
	identity identity.Hash
	laps     int

	components []component.Component
	kinds      []string
}

// New constructs a Bundle from a fixed list of component kinds (as
// registered with component.Register). Kinds that fail to construct
// or report unavailable are silently dropped — unavailable components
// degrade to zero-state no-ops — so an empty-looking Bundle (no
// requested kind available) is still valid: all operations on it are
// no-ops.
func New(key, tag string, depth int, id identity.Hash, kinds []string) *Bundle {
	b := &Bundle{
		key:      key,
		tag:      tag,
		depth:    depth,
		identity: id,
		kinds:    append([]string(nil), kinds...),
	}
	for _, k := range kinds {
		c, ok := component.New(k)
		if !ok || !component.IsAvailable(c) {
			continue
		}
		b.components = append(b.components, c)
	}
	return b
}

// CloneEmpty returns a new, zeroed Bundle with the same key, tag,
// depth, identity and component kinds as b. Used by storage.Tree when
// it creates a fresh node (a fresh zeroed accumulator bundle of the
// template's type) and by scope handles that clone a stored node's
// bundle to measure into an ephemeral target.
func (b *Bundle) CloneEmpty() *Bundle {
	return New(b.key, b.tag, b.depth, b.identity, b.kinds)
}

func (b *Bundle) Key() string             { return b.key }
func (b *Bundle) Tag() string             { return b.tag }
func (b *Bundle) Depth() int              { return b.depth }
func (b *Bundle) Identity() identity.Hash { return b.identity }
func (b *Bundle) Laps() int               { return b.laps }
func (b *Bundle) Kinds() []string         { return append([]string(nil), b.kinds...) }
func (b *Bundle) Len() int                { return len(b.components) }

// Components returns the bundle's live components, in bundle order.
func (b *Bundle) Components() []component.Component {
	return append([]component.Component(nil), b.components...)
}

// Component returns the live component of the given kind, or nil if
// that kind was unavailable or never requested.
func (b *Bundle) Component(kind string) component.Component {
	for _, c := range b.components {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// Start broadcasts Start to every component and increments laps.
func (b *Bundle) Start() {
	for _, c := range b.components {
		c.Start()
	}
	b.laps++
}

// Stop broadcasts Stop to every component. laps is unaffected.
func (b *Bundle) Stop() {
	for _, c := range b.components {
		c.Stop()
	}
}

// ConditionalStart broadcasts ConditionalStart; laps increments iff
// any component actually transitioned.
func (b *Bundle) ConditionalStart() bool {
	transitioned := false
	for _, c := range b.components {
		if c.ConditionalStart() {
			transitioned = true
		}
	}
	if transitioned {
		b.laps++
	}
	return transitioned
}

// ConditionalStop broadcasts ConditionalStop; laps decrements iff any
// component actually transitioned. Pause and Resume do not use it and
// leave laps alone.
func (b *Bundle) ConditionalStop() bool {
	transitioned := false
	for _, c := range b.components {
		if c.ConditionalStop() {
			transitioned = true
		}
	}
	if transitioned {
		b.laps--
	}
	return transitioned
}

// Pause stops any running component without touching laps — true
// pause semantics, distinct from ConditionalStop.
func (b *Bundle) Pause() bool {
	paused := false
	for _, c := range b.components {
		if c.Pause() {
			paused = true
		}
	}
	return paused
}

// Resume restarts every component after Pause, without touching laps.
func (b *Bundle) Resume() {
	for _, c := range b.components {
		c.Resume()
	}
}

// Record broadcasts a single non-interval sample to every component.
func (b *Bundle) Record() {
	for _, c := range b.components {
		c.Record()
	}
}

// Reset zeros every component's accumulator and zeros laps.
func (b *Bundle) Reset() {
	for _, c := range b.components {
		c.Reset()
	}
	b.laps = 0
}

// Add folds other's accumulators and laps into b, component-wise.
// other must share b's component kinds and order, which holds for
// any two Bundles descended from the same CloneEmpty template — the
// invariant storage.Tree relies on when merging.
func (b *Bundle) Add(other *Bundle) {
	for i, c := range b.components {
		c.Add(other.components[i])
	}
	b.laps += other.laps
}

// Sub is the inverse of Add.
func (b *Bundle) Sub(other *Bundle) {
	for i, c := range b.components {
		c.Sub(other.components[i])
	}
	b.laps -= other.laps
}

// Mul scales every component's accumulator by factor. laps is
// unaffected.
func (b *Bundle) Mul(factor float64) {
	for _, c := range b.components {
		c.Mul(factor)
	}
}

// Div scales every component's accumulator by 1/factor.
func (b *Bundle) Div(factor float64) {
	for _, c := range b.components {
		c.Div(factor)
	}
}

// resolveDerived gives every Deriver-implementing component a chance
// to recompute its value from its siblings. It runs just before
// Print/Serialize, not while the bundle is running, so a derived
// value reflects the accumulator's final state rather than some
// mid-run sample.
func (b *Bundle) resolveDerived() {
	siblings := make(map[string]component.Component, len(b.components))
	for _, c := range b.components {
		siblings[c.Kind()] = c
	}
	for _, c := range b.components {
		if d, ok := c.(component.Deriver); ok {
			d.Derive(siblings)
		}
	}
}

// Serialize writes identity, laps, then each component in order.
func (b *Bundle) Serialize(a component.Archive) {
	b.resolveDerived()
	a.Field("identifier", uint64(b.identity))
	a.Field("key", b.key)
	a.Field("tag", b.tag)
	a.Field("laps", b.laps)
	data := a.Object("data")
	for _, c := range b.components {
		c.Serialize(data.Object(c.Kind()))
	}
}

// Print writes each component with index/total hints for
// inter-sibling delimiters. It writes no label; String prefixes one.
func (b *Bundle) Print(w io.Writer) {
	b.resolveDerived()
	total := len(b.components)
	for i, c := range b.components {
		c.Print(w, i, total)
	}
}

// String renders the bundle on one line, mainly for debugging and
// tests; report.Text produces the canonical tree report.
func (b *Bundle) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "[%s] %s laps=%d ", b.tag, b.key, b.laps)
	b.Print(&buf)
	return buf.String()
}
