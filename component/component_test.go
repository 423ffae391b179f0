// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallClockStartStopAccumulates(t *testing.T) {
	w := NewWallClock()
	w.Start()
	time.Sleep(2 * time.Millisecond)
	w.Stop()
	assert.Greater(t, w.Seconds(), 0.0)

	var buf bytes.Buffer
	w.Print(&buf, 0, 1)
	assert.Contains(t, buf.String(), "wall")
}

func TestWallClockConditionalStartStopIsIdempotent(t *testing.T) {
	w := NewWallClock()
	require.True(t, w.ConditionalStart())
	assert.False(t, w.ConditionalStart(), "second ConditionalStart should not transition")
	assert.True(t, w.ConditionalStop())
	assert.False(t, w.ConditionalStop(), "second ConditionalStop should not transition")
}

func TestWallClockAddSumsSamples(t *testing.T) {
	a, b := NewWallClock(), NewWallClock()
	a.Start()
	a.Stop()
	b.Start()
	b.Stop()
	a.Add(b)
	assert.Equal(t, 2, a.samples)
	assert.Len(t, a.Samples(), 2)
}

func TestWallClockResetZeros(t *testing.T) {
	w := NewWallClock()
	w.Start()
	w.Stop()
	w.Reset()
	assert.Equal(t, 0.0, w.Seconds())
	assert.Empty(t, w.Samples())
}

func TestCPUUtilDerivesFromSiblings(t *testing.T) {
	wall := NewWallClock()
	wall.Start()
	time.Sleep(time.Millisecond)
	wall.Stop()

	cpu := NewCPUClock()
	// Simulate an available cpu_clock without depending on the OS
	// probe actually reporting nonzero usage in a fast test run.
	cpu.accumulated = time.Microsecond
	cpu.samples = 1

	u := NewCPUUtil()
	siblings := map[string]Component{"wall_clock": wall, "cpu_clock": cpu}
	ok := u.Derive(siblings)
	require.True(t, ok)
	assert.Greater(t, u.percent, 0.0)
}

func TestCPUUtilDeriveFailsWithoutSiblings(t *testing.T) {
	u := NewCPUUtil()
	ok := u.Derive(map[string]Component{})
	assert.False(t, ok)
}

func TestRegistryRegisterAndNew(t *testing.T) {
	Register("test_kind_xyz", func() Component { return NewCounter() })
	c, ok := New("test_kind_xyz")
	require.True(t, ok)
	assert.Equal(t, "counter", c.Kind())
}

func TestRegistryUnknownKind(t *testing.T) {
	_, ok := New("no_such_kind")
	assert.False(t, ok)
}

func TestCapabilitiesString(t *testing.T) {
	caps := CapAvailable | CapTimingCategory
	assert.Equal(t, "Available|TimingCategory", caps.String())
	assert.Equal(t, "0", Capabilities(0).String())
}

func TestCounterIncrAndSerialize(t *testing.T) {
	c := NewCounter()
	c.Incr(3)
	c.Record()
	assert.Equal(t, 4.0, c.total)

	rec := &fakeArchive{}
	c.Serialize(rec)
	assert.Equal(t, 4.0, rec.fields["value"])
}

type fakeArchive struct {
	fields map[string]any
}

func (f *fakeArchive) Field(name string, value any) {
	if f.fields == nil {
		f.fields = make(map[string]any)
	}
	f.fields[name] = value
}

func (f *fakeArchive) Object(name string) Archive {
	child := &fakeArchive{}
	f.Field(name, child)
	return child
}
