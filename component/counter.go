// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"
)

// Counter is a simple user-extensible component: a monotonically
// accumulated application-defined value (call counts, bytes moved,
// retries, anything additive). It exists to demonstrate registering a
// component kind beyond the six built into this package with
// Register, not as a seventh first-class metric. It implements neither
// of the optional GlobalIniter and ThreadIniter hooks.
//
// Application code adds to a Counter through its concrete type:
//
//	if c, ok := b.Component("retries").(*component.Counter); ok {
//		c.Incr(1)
//	}
type Counter struct {
	total   float64
	samples int
}

// NewCounter returns a fresh, zeroed Counter. Register it under an
// application-chosen kind name, e.g.
// component.Register("retries", func() component.Component { return component.NewCounter() }).
func NewCounter() *Counter { return &Counter{} }

// Incr folds n into the running total. This is Counter-specific, not
// part of the Component interface — callers retrieve the concrete
// type to use it, as shown above.
func (c *Counter) Incr(n float64) {
	c.total += n
	c.samples++
}

func (c *Counter) Start()                 {}
func (c *Counter) Stop()                  {}
func (c *Counter) ConditionalStart() bool { return false }
func (c *Counter) ConditionalStop() bool  { return false }
func (c *Counter) Pause() bool            { return false }
func (c *Counter) Resume()                {}

// Record takes a single non-interval sample of weight 1, so a
// Counter used purely via Record behaves like an event tally.
func (c *Counter) Record() { c.Incr(1) }

func (c *Counter) Reset() { *c = Counter{} }

func (c *Counter) Add(other Component) {
	o := other.(*Counter)
	c.total += o.total
	c.samples += o.samples
}

func (c *Counter) Sub(other Component) {
	o := other.(*Counter)
	c.total -= o.total
	c.samples -= o.samples
}

func (c *Counter) Mul(factor float64) { c.total *= factor }
func (c *Counter) Div(factor float64) { c.total /= factor }

func (c *Counter) Serialize(a Archive) {
	a.Field("value", c.total)
	a.Field("samples", c.samples)
}

func (c *Counter) Print(out io.Writer, index, total int) {
	fmt.Fprintf(out, "%10.0f count", c.total)
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (c *Counter) Kind() string { return "counter" }
func (c *Counter) Unit() string { return "count" }

func (c *Counter) Capabilities() Capabilities { return CapAvailable }
