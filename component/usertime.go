// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"
	"time"
)

// UserTime measures time spent executing in user mode, the "Utime"
// half of CPUClock.
type UserTime struct {
	rusageSample
	accumulated time.Duration
	samples     int
}

// NewUserTime returns a fresh, zeroed UserTime.
func NewUserTime() *UserTime { return &UserTime{} }

func (u *UserTime) Start() { u.start() }

func (u *UserTime) Stop() {
	du, _, ok := u.delta()
	u.started = false
	if !ok {
		return
	}
	u.accumulated += time.Duration(du * float64(time.Second))
	u.samples++
}

func (u *UserTime) ConditionalStart() bool {
	if u.started {
		return false
	}
	u.Start()
	return true
}

func (u *UserTime) ConditionalStop() bool {
	if !u.started {
		return false
	}
	u.Stop()
	return true
}

func (u *UserTime) Pause() bool { return u.ConditionalStop() }
func (u *UserTime) Resume()     { u.ConditionalStart() }
func (u *UserTime) Record()     {}
func (u *UserTime) Reset()      { *u = UserTime{} }

func (u *UserTime) Add(other Component) {
	o := other.(*UserTime)
	u.accumulated += o.accumulated
	u.samples += o.samples
}

func (u *UserTime) Sub(other Component) {
	o := other.(*UserTime)
	u.accumulated -= o.accumulated
	u.samples -= o.samples
}

func (u *UserTime) Mul(factor float64) {
	u.accumulated = time.Duration(float64(u.accumulated) * factor)
}

func (u *UserTime) Div(factor float64) {
	u.accumulated = time.Duration(float64(u.accumulated) / factor)
}

func (u *UserTime) Serialize(a Archive) {
	a.Field("value", u.accumulated.Seconds())
	a.Field("unit", u.Unit())
	a.Field("samples", u.samples)
}

func (u *UserTime) Print(out io.Writer, index, total int) {
	fmt.Fprintf(out, "%10.6f user", u.accumulated.Seconds())
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (u *UserTime) Kind() string { return "user_time" }
func (u *UserTime) Unit() string { return "sec" }

func (u *UserTime) Capabilities() Capabilities {
	caps := Capabilities(CapTimingCategory | CapUsesTimingUnits)
	if _, _, ok := getrusageSelf(); ok {
		caps |= CapAvailable
	}
	return caps
}
