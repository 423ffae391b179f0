// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope implements the scope handle: the entry/exit object
// application code wraps a region of interest with. Go has neither
// RAII destructors nor macros, so where the original design relies on
// both, this package uses an explicit Stop method (deferred by the
// caller) and a BeginHere helper that captures the call site with
// runtime.Caller instead of a preprocessor macro.
package scope

import (
	"context"
	"runtime"

	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/component"
	"github.com/perfscope/perfscope/identity"
	"github.com/perfscope/perfscope/manager"
	"github.com/perfscope/perfscope/storage"
)

// Handle represents one open scope. Stop must be called exactly once,
// typically via defer immediately after Begin/BeginHere.
type Handle struct {
	worker       *manager.Worker
	reportOnExit bool
	trackable    bool

	node *storage.Node // non-nil iff trackable

	// target is the bundle Start/Stop and friends actually operate
	// on this lap. It is node.Bundle() itself, unless reportOnExit
	// asked for a per-lap printout, in which case it is a fresh clone
	// that gets folded into node.Bundle() on Stop (isClone) so that
	// the printed value reflects only this lap rather than the
	// node's running total.
	target  *bundle.Bundle
	isClone bool
}

// Begin opens a scope identified by (key, line) nested under ctx's
// current call path, with the given display tag. It returns a context
// to pass to any nested Begin calls and the Handle to Stop when the
// scope ends.
//
// If reportOnExit is true, Stop also writes an immediate one-line
// summary of this lap to the manager's configured output.
func Begin(ctx context.Context, key string, line int, tag string, reportOnExit bool) (context.Context, *Handle) {
	ctx, w := ensureWorker(ctx)

	trackable, parent, depth := w.Enter()
	id := identity.Of(parent, key, line)
	h := &Handle{worker: w, reportOnExit: reportOnExit, trackable: trackable}

	if trackable {
		n := w.Push(id, key, tag, w.Kinds())
		h.node = n
		if reportOnExit {
			h.target = n.Bundle().CloneEmpty()
			h.isClone = true
		} else {
			h.target = n.Bundle()
		}
	} else {
		h.target = w.NewEphemeral(key, tag, id, depth, w.Kinds())
	}
	h.target.Start()
	return ctx, h
}

// BeginHere is Begin with the call site captured automatically via
// runtime.Caller: the key is the calling function's name and the line
// is the caller's own line, standing in for the timing-macro sugar a
// C++ implementation gets from the preprocessor.
func BeginHere(ctx context.Context, tag string, reportOnExit bool) (context.Context, *Handle) {
	pc, file, line, _ := runtime.Caller(1)
	key := file
	if fn := runtime.FuncForPC(pc); fn != nil {
		key = fn.Name()
	}
	return Begin(ctx, key, line, tag, reportOnExit)
}

// ConditionalStart restarts the scope's components iff not already
// running, affecting laps (distinct from Pause/Resume).
func (h *Handle) ConditionalStart() bool { return h.target.ConditionalStart() }

// ConditionalStop stops the scope's components iff running, affecting
// laps.
func (h *Handle) ConditionalStop() bool { return h.target.ConditionalStop() }

// Pause suspends measurement without affecting laps; Resume undoes
// it. Pause/Resume is textually and semantically distinct from
// ConditionalStart/ConditionalStop.
func (h *Handle) Pause() bool { return h.target.Pause() }

// Resume restarts measurement after Pause.
func (h *Handle) Resume() { h.target.Resume() }

// Record takes a single non-interval sample on every component that
// supports one (e.g. a fresh RSS reading mid-scope).
func (h *Handle) Record() { h.target.Record() }

// Component returns this scope's live component of the given kind, or
// nil if it wasn't available or wasn't requested — e.g. to reach a
// user-extensible kind's concrete type, such as *component.Counter.
func (h *Handle) Component(kind string) component.Component { return h.target.Component(kind) }

// Stop ends the scope: it stops measurement, ascends the call tree
// (if tracked), folds a per-lap clone into the node's running total
// (if reportOnExit asked for one), and undoes the depth bookkeeping
// Begin/BeginHere performed — balanced even for an untracked
// (disabled or over-depth) scope.
func (h *Handle) Stop() {
	defer h.worker.Exit()

	h.target.Stop()

	if h.trackable {
		h.worker.Pop()
	}
	if h.isClone {
		h.node.Bundle().Add(h.target)
	}
	if h.reportOnExit {
		h.worker.LogImmediate(h.target)
	}
}

func ensureWorker(ctx context.Context) (context.Context, *manager.Worker) {
	if w, ok := manager.WorkerFromContext(ctx); ok {
		return ctx, w
	}
	return manager.AttachContext(ctx)
}
