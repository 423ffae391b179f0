// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"
)

// CPUUtil is a derived component: 100 * cpu_clock / wall_clock. It
// never Starts or Stops a probe of its own; its value is computed by
// Derive at report time from its siblings in the enclosing bundle.
type CPUUtil struct {
	percent float64
	derived bool
}

// NewCPUUtil returns a fresh CPUUtil with no derived value yet.
func NewCPUUtil() *CPUUtil { return &CPUUtil{} }

func (u *CPUUtil) Start()                 {}
func (u *CPUUtil) Stop()                  {}
func (u *CPUUtil) ConditionalStart() bool { return false }
func (u *CPUUtil) ConditionalStop() bool  { return false }
func (u *CPUUtil) Pause() bool            { return false }
func (u *CPUUtil) Resume()                {}
func (u *CPUUtil) Record()                {}

func (u *CPUUtil) Reset() { *u = CPUUtil{} }

func (u *CPUUtil) Add(other Component) {
	o := other.(*CPUUtil)
	// Derived values don't accumulate across laps the way sampled
	// accumulators do; re-derive from siblings at the next report
	// instead. Preserve derived-ness so Print/Serialize still show
	// the last computed value if re-derivation isn't possible.
	if o.derived {
		u.percent, u.derived = o.percent, true
	}
}

func (u *CPUUtil) Sub(other Component) {
	u.percent, u.derived = 0, false
}

func (u *CPUUtil) Mul(factor float64) { u.percent *= factor }
func (u *CPUUtil) Div(factor float64) { u.percent /= factor }

// Derive implements component.Deriver: cpu_util = 100 * cpu_clock /
// wall_clock, recomputed (not accumulated) every time it's called.
func (u *CPUUtil) Derive(siblings map[string]Component) bool {
	cpu, okCPU := siblings["cpu_clock"].(*CPUClock)
	wall, okWall := siblings["wall_clock"].(*WallClock)
	if !okCPU || !okWall || wall.Seconds() <= 0 {
		return false
	}
	u.percent = 100 * cpu.Seconds() / wall.Seconds()
	u.derived = true
	return true
}

func (u *CPUUtil) Serialize(a Archive) {
	a.Field("value", u.percent)
	a.Field("unit", u.Unit())
	a.Field("derived", u.derived)
}

func (u *CPUUtil) Print(out io.Writer, index, total int) {
	if !u.derived {
		fmt.Fprint(out, "   n/a cpu_util")
	} else {
		fmt.Fprintf(out, "%6.2f%% cpu_util", u.percent)
	}
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (u *CPUUtil) Kind() string { return "cpu_util" }
func (u *CPUUtil) Unit() string { return "%" }

func (u *CPUUtil) Capabilities() Capabilities {
	return CapAvailable | CapUsesPercentUnits
}
