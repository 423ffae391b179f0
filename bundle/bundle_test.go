// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfscope/perfscope/identity"
)

func TestNewDropsUnavailableKinds(t *testing.T) {
	b := New("key", "", 0, identity.Root, []string{"wall_clock", "no_such_kind"})
	assert.Equal(t, 1, b.Len())
	assert.NotNil(t, b.Component("wall_clock"))
	assert.Nil(t, b.Component("no_such_kind"))
}

func TestStartStopIncrementsLaps(t *testing.T) {
	b := New("key", "", 0, identity.Root, []string{"wall_clock"})
	b.Start()
	time.Sleep(time.Millisecond)
	b.Stop()
	assert.Equal(t, 1, b.Laps())

	b.Start()
	b.Stop()
	assert.Equal(t, 2, b.Laps())
}

func TestConditionalStartStopLapAccounting(t *testing.T) {
	b := New("key", "", 0, identity.Root, []string{"wall_clock"})
	require.True(t, b.ConditionalStart())
	assert.Equal(t, 1, b.Laps())
	assert.False(t, b.ConditionalStart(), "already running")
	assert.Equal(t, 1, b.Laps())
	require.True(t, b.ConditionalStop())
	assert.Equal(t, 0, b.Laps())
}

func TestPauseResumeDoesNotAffectLaps(t *testing.T) {
	b := New("key", "", 0, identity.Root, []string{"wall_clock"})
	b.Start()
	assert.Equal(t, 1, b.Laps())
	assert.True(t, b.Pause())
	assert.Equal(t, 1, b.Laps(), "Pause must not touch laps (distinct from ConditionalStop)")
	b.Resume()
	assert.Equal(t, 1, b.Laps())
	b.Stop()
}

func TestCloneEmptyIsIndependent(t *testing.T) {
	b := New("key", "tag", 2, identity.Of(identity.Root, "key", 1), []string{"wall_clock"})
	b.Start()
	b.Stop()

	clone := b.CloneEmpty()
	assert.Equal(t, b.Key(), clone.Key())
	assert.Equal(t, b.Tag(), clone.Tag())
	assert.Equal(t, b.Depth(), clone.Depth())
	assert.Equal(t, b.Identity(), clone.Identity())
	assert.Equal(t, 0, clone.Laps())
}

func TestAddSubRoundTrip(t *testing.T) {
	a := New("k", "", 0, identity.Root, []string{"wall_clock"})
	b := New("k", "", 0, identity.Root, []string{"wall_clock"})
	a.Start()
	a.Stop()
	b.Start()
	b.Stop()

	sum := a.CloneEmpty()
	sum.Add(a)
	sum.Add(b)
	assert.Equal(t, a.Laps()+b.Laps(), sum.Laps())

	sum.Sub(b)
	assert.Equal(t, a.Laps(), sum.Laps())
}

func TestDerivationRunsAtPrintNotWhileRunning(t *testing.T) {
	b := New("k", "", 0, identity.Root, []string{"wall_clock", "cpu_clock", "cpu_util"})
	require.NotNil(t, b.Component("cpu_util"))
	b.Start()
	b.Stop()

	var buf buffer
	b.Print(&buf)
	assert.Contains(t, buf.String(), "cpu_util")
}

type buffer struct{ data []byte }

func (b *buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
func (b *buffer) String() string { return string(b.data) }
