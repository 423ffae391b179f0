// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"
	"time"
)

// SystemTime measures time spent executing in kernel mode on this
// process's behalf, the "Stime" half of CPUClock.
type SystemTime struct {
	rusageSample
	accumulated time.Duration
	samples     int
}

// NewSystemTime returns a fresh, zeroed SystemTime.
func NewSystemTime() *SystemTime { return &SystemTime{} }

func (s *SystemTime) Start() { s.start() }

func (s *SystemTime) Stop() {
	_, ds, ok := s.delta()
	s.started = false
	if !ok {
		return
	}
	s.accumulated += time.Duration(ds * float64(time.Second))
	s.samples++
}

func (s *SystemTime) ConditionalStart() bool {
	if s.started {
		return false
	}
	s.Start()
	return true
}

func (s *SystemTime) ConditionalStop() bool {
	if !s.started {
		return false
	}
	s.Stop()
	return true
}

func (s *SystemTime) Pause() bool { return s.ConditionalStop() }
func (s *SystemTime) Resume()     { s.ConditionalStart() }
func (s *SystemTime) Record()     {}
func (s *SystemTime) Reset()      { *s = SystemTime{} }

func (s *SystemTime) Add(other Component) {
	o := other.(*SystemTime)
	s.accumulated += o.accumulated
	s.samples += o.samples
}

func (s *SystemTime) Sub(other Component) {
	o := other.(*SystemTime)
	s.accumulated -= o.accumulated
	s.samples -= o.samples
}

func (s *SystemTime) Mul(factor float64) {
	s.accumulated = time.Duration(float64(s.accumulated) * factor)
}

func (s *SystemTime) Div(factor float64) {
	s.accumulated = time.Duration(float64(s.accumulated) / factor)
}

func (s *SystemTime) Serialize(a Archive) {
	a.Field("value", s.accumulated.Seconds())
	a.Field("unit", s.Unit())
	a.Field("samples", s.samples)
}

func (s *SystemTime) Print(out io.Writer, index, total int) {
	fmt.Fprintf(out, "%10.6f sys", s.accumulated.Seconds())
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (s *SystemTime) Kind() string { return "system_time" }
func (s *SystemTime) Unit() string { return "sec" }

func (s *SystemTime) Capabilities() Capabilities {
	caps := Capabilities(CapTimingCategory | CapUsesTimingUnits)
	if _, _, ok := getrusageSelf(); ok {
		caps |= CapAvailable
	}
	return caps
}
