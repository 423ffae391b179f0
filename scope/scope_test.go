// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfscope/perfscope/manager"
)

// newTestWorker attaches a fresh Worker against the process-wide
// Master — the only manager instance scope.Begin ever talks to —
// leaving the caller to set whatever Master config the test needs.
func newTestWorker(t *testing.T) (context.Context, *manager.Worker) {
	t.Helper()
	ctx, w := manager.AttachContext(context.Background())
	t.Cleanup(w.Close)
	return ctx, w
}

func TestBeginStopTracksASingleScope(t *testing.T) {
	manager.Master().SetEnabled(true)
	manager.Master().SetMaxDepth(64)
	ctx, w := newTestWorker(t)

	_, h := Begin(ctx, "work", 1, "", false)
	h.Stop()

	require.Len(t, w.Tree().Root().Children(), 1)
	assert.Equal(t, "work", w.Tree().Root().Children()[0].Key())
	assert.Equal(t, 1, w.Tree().Root().Children()[0].Laps())
}

func TestNestedScopesReuseOnRepeat(t *testing.T) {
	manager.Master().SetEnabled(true)
	manager.Master().SetMaxDepth(64)
	ctx, w := newTestWorker(t)

	for i := 0; i < 2; i++ {
		inner, outer := Begin(ctx, "outer", 1, "", false)
		_, mid := Begin(inner, "inner", 2, "", false)
		mid.Stop()
		outer.Stop()
	}

	root := w.Tree().Root()
	require.Len(t, root.Children(), 1)
	outerNode := root.Children()[0]
	assert.Equal(t, 2, outerNode.Laps())
	require.Len(t, outerNode.Children(), 1)
	assert.Equal(t, 2, outerNode.Children()[0].Laps())
}

func TestDisabledScopeStaysBalancedAndUnmerged(t *testing.T) {
	manager.Master().SetEnabled(false)
	ctx, w := newTestWorker(t)

	_, h := Begin(ctx, "work", 1, "", false)
	h.Stop()

	assert.Empty(t, w.Tree().Root().Children(), "disabled scopes must not be tracked in the call tree")
	manager.Master().SetEnabled(true)
}

func TestReportOnExitWritesImmediateSummary(t *testing.T) {
	var buf bytes.Buffer
	manager.Master().SetOutput(&buf)
	manager.Master().SetEnabled(true)
	manager.Master().SetMaxDepth(64)
	ctx, w := newTestWorker(t)
	_, h := Begin(ctx, "work", 1, "", true)
	h.Stop()

	assert.Contains(t, buf.String(), "work")
	_ = w
}

func TestReportOnExitPrintsPerLapNotCumulative(t *testing.T) {
	var buf bytes.Buffer
	manager.Master().SetOutput(&buf)
	manager.Master().SetEnabled(true)
	manager.Master().SetMaxDepth(64)
	ctx, w := newTestWorker(t)

	for i := 0; i < 3; i++ {
		_, h := Begin(ctx, "work", 1, "", true)
		h.Stop()
	}

	require.Len(t, w.Tree().Root().Children(), 1)
	node := w.Tree().Root().Children()[0]
	assert.Equal(t, 3, node.Laps(), "the node's own accumulator still sums every lap")

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3, "one immediate summary line per lap")
	for _, line := range lines {
		assert.Contains(t, string(line), "laps=1", "each printed lap must report its own single lap, not the node's running total")
	}
}
