// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// PeakRSS is a gauge over resident set size: Record samples the
// current RSS and keeps the high-water mark. Start/Stop bracket a
// region by sampling at both ends, same as Record called twice.
type PeakRSS struct {
	highWater uint64
	samples   int
	started   bool
}

// NewPeakRSS returns a fresh PeakRSS with no samples yet.
func NewPeakRSS() *PeakRSS { return &PeakRSS{} }

func (m *PeakRSS) Start() { m.Record(); m.started = true }
func (m *PeakRSS) Stop()  { m.Record(); m.started = false }

func (m *PeakRSS) ConditionalStart() bool {
	if m.started {
		return false
	}
	m.Start()
	return true
}

func (m *PeakRSS) ConditionalStop() bool {
	if !m.started {
		return false
	}
	m.Stop()
	return true
}

func (m *PeakRSS) Pause() bool { return false }
func (m *PeakRSS) Resume()     {}

func (m *PeakRSS) Record() {
	rss, ok := currentRSSBytes()
	if !ok {
		return
	}
	m.samples++
	if rss > m.highWater {
		m.highWater = rss
	}
}

func (m *PeakRSS) Reset() { *m = PeakRSS{} }

func (m *PeakRSS) Add(other Component) {
	o := other.(*PeakRSS)
	if o.highWater > m.highWater {
		m.highWater = o.highWater
	}
	m.samples += o.samples
}

func (m *PeakRSS) Sub(other Component) {
	o := other.(*PeakRSS)
	m.samples -= o.samples
	// High-water marks don't subtract meaningfully; leave the max
	// in place rather than produce a nonsensical lower bound.
	_ = o
}

func (m *PeakRSS) Mul(factor float64) {
	m.highWater = uint64(float64(m.highWater) * factor)
}

func (m *PeakRSS) Div(factor float64) {
	m.highWater = uint64(float64(m.highWater) / factor)
}

func (m *PeakRSS) Serialize(a Archive) {
	a.Field("value", m.highWater)
	a.Field("unit", m.Unit())
	a.Field("samples", m.samples)
}

func (m *PeakRSS) Print(out io.Writer, index, total int) {
	fmt.Fprintf(out, "%9s peak_rss", humanize.Bytes(m.highWater))
	if index < total-1 {
		fmt.Fprint(out, ", ")
	}
}

func (m *PeakRSS) Kind() string { return "peak_rss" }
func (m *PeakRSS) Unit() string { return "bytes" }

func (m *PeakRSS) Capabilities() Capabilities {
	var caps Capabilities
	if _, ok := currentRSSBytes(); ok {
		caps |= CapAvailable
	}
	return caps
}
