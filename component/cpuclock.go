// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"
	"time"
)

// CPUClock measures process CPU time (user + system) between Start
// and Stop, via getrusage(RUSAGE_SELF).
type CPUClock struct {
	rusageSample
	accumulated time.Duration
	samples     int
}

// NewCPUClock returns a fresh, zeroed CPUClock.
func NewCPUClock() *CPUClock { return &CPUClock{} }

func (c *CPUClock) Start() { c.start() }

func (c *CPUClock) Stop() {
	du, ds, ok := c.delta()
	c.started = false
	if !ok {
		return
	}
	c.accumulated += time.Duration((du + ds) * float64(time.Second))
	c.samples++
}

func (c *CPUClock) ConditionalStart() bool {
	if c.started {
		return false
	}
	c.Start()
	return true
}

func (c *CPUClock) ConditionalStop() bool {
	if !c.started {
		return false
	}
	c.Stop()
	return true
}

func (c *CPUClock) Pause() bool { return c.ConditionalStop() }
func (c *CPUClock) Resume()     { c.ConditionalStart() }
func (c *CPUClock) Record()     {}
func (c *CPUClock) Reset()      { *c = CPUClock{} }

func (c *CPUClock) Add(other Component) {
	o := other.(*CPUClock)
	c.accumulated += o.accumulated
	c.samples += o.samples
}

func (c *CPUClock) Sub(other Component) {
	o := other.(*CPUClock)
	c.accumulated -= o.accumulated
	c.samples -= o.samples
}

func (c *CPUClock) Mul(factor float64) {
	c.accumulated = time.Duration(float64(c.accumulated) * factor)
}

func (c *CPUClock) Div(factor float64) {
	c.accumulated = time.Duration(float64(c.accumulated) / factor)
}

func (c *CPUClock) Serialize(a Archive) {
	a.Field("value", c.accumulated.Seconds())
	a.Field("unit", c.Unit())
	a.Field("samples", c.samples)
}

func (c *CPUClock) Print(out io.Writer, index, total int) {
	fmt.Fprintf(out, "%10.6f cpu", c.accumulated.Seconds())
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (c *CPUClock) Kind() string { return "cpu_clock" }
func (c *CPUClock) Unit() string { return "sec" }

func (c *CPUClock) Capabilities() Capabilities {
	caps := Capabilities(CapTimingCategory | CapUsesTimingUnits | CapSupportsFlamegraph)
	if _, _, ok := getrusageSelf(); ok {
		caps |= CapAvailable
	}
	return caps
}

// Seconds returns the current accumulated duration in seconds. Used
// by CPUUtil's derivation.
func (c *CPUClock) Seconds() float64 { return c.accumulated.Seconds() }
