// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"
	"time"
)

// WallClock measures elapsed real time between Start and Stop.
type WallClock struct {
	started     bool
	last        time.Time
	accumulated time.Duration
	samples     int
	laps        []float64 // per-lap seconds, for report's variance column
}

// NewWallClock returns a fresh, zeroed WallClock. Always available.
func NewWallClock() *WallClock { return &WallClock{} }

func (w *WallClock) Start() {
	w.last = time.Now()
	w.started = true
}

func (w *WallClock) Stop() {
	if !w.started {
		return
	}
	d := time.Since(w.last)
	w.accumulated += d
	w.samples++
	w.laps = append(w.laps, d.Seconds())
	w.started = false
}

func (w *WallClock) ConditionalStart() bool {
	if w.started {
		return false
	}
	w.Start()
	return true
}

func (w *WallClock) ConditionalStop() bool {
	if !w.started {
		return false
	}
	w.Stop()
	return true
}

func (w *WallClock) Pause() bool { return w.ConditionalStop() }
func (w *WallClock) Resume()     { w.ConditionalStart() }
func (w *WallClock) Record()     {} // wall clock is interval-only; non-interval samples are a no-op
func (w *WallClock) Reset()      { *w = WallClock{} }

func (w *WallClock) Add(other Component) {
	o := other.(*WallClock)
	w.accumulated += o.accumulated
	w.samples += o.samples
	w.laps = append(w.laps, o.laps...)
}

func (w *WallClock) Sub(other Component) {
	o := other.(*WallClock)
	w.accumulated -= o.accumulated
	w.samples -= o.samples
}

func (w *WallClock) Mul(factor float64) {
	w.accumulated = time.Duration(float64(w.accumulated) * factor)
}

func (w *WallClock) Div(factor float64) {
	w.accumulated = time.Duration(float64(w.accumulated) / factor)
}

func (w *WallClock) Serialize(a Archive) {
	a.Field("value", w.accumulated.Seconds())
	a.Field("unit", w.Unit())
	a.Field("samples", w.samples)
}

func (w *WallClock) Print(out io.Writer, index, total int) {
	fmt.Fprintf(out, "%10.6f wall", w.accumulated.Seconds())
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (w *WallClock) Kind() string { return "wall_clock" }
func (w *WallClock) Unit() string { return "sec" }

func (w *WallClock) Capabilities() Capabilities {
	return CapAvailable | CapTimingCategory | CapUsesTimingUnits | CapSupportsFlamegraph
}

// Seconds returns the current accumulated duration in seconds. Used
// by CPUUtil's derivation.
func (w *WallClock) Seconds() float64 { return w.accumulated.Seconds() }

// Samples returns this component's per-lap seconds, implementing
// SampleRecorder for report's variance column.
func (w *WallClock) Samples() []float64 { return append([]float64(nil), w.laps...) }
