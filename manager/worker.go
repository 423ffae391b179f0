// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/component"
	"github.com/perfscope/perfscope/identity"
	"github.com/perfscope/perfscope/storage"
)

// Worker is this library's stand-in for thread-local storage: Go has
// no TLS, so callers obtain a Worker from Manager.Attach, carry
// it explicitly (in practice, inside a context.Context via the scope
// package), and Close it when the owning goroutine is done. A Worker
// must only ever be used from the single goroutine that attached it.
type Worker struct {
	m    *Manager
	tree *storage.Tree

	// liveDepth counts every open scope on this worker, tracked or
	// not, so that the decision to track scope N+1 only ever depends
	// on scope N's depth having been counted — enter/exit stays
	// balanced even while disabled or past MaxDepth.
	liveDepth int

	threadInit map[string]bool
	closed     bool
}

// Close folds this worker's call tree into the manager's merge pool
// and deregisters it. Calls after the first do nothing; typically
// deferred immediately after Attach.
func (w *Worker) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.m.release(w)
}

// Tree exposes the worker's call tree for report/test introspection.
func (w *Worker) Tree() *storage.Tree { return w.tree }

// Enter accounts for one more open scope and reports whether it
// should actually be tracked in the call tree: enabled, and within
// MaxDepth. depth is this scope's nesting level (0 at the root) and
// parent is the identity of the enclosing tracked scope, i.e. the
// tree cursor — used even for untracked scopes so that identity stays
// well-defined if tracking later resumes at a shallower depth.
func (w *Worker) Enter() (trackable bool, parent identity.Hash, depth int) {
	depth = w.liveDepth
	w.liveDepth++
	trackable = w.m.Enabled() && depth < w.m.MaxDepth()
	parent = w.tree.Cursor().Identity()
	return trackable, parent, depth
}

// Exit undoes the bookkeeping Enter performed; it is always called,
// whether or not the scope was tracked. An Exit with no open scope is
// an unbalanced scope and panics with a *FatalError.
func (w *Worker) Exit() {
	if w.liveDepth <= 0 {
		fatalf("Exit", "unbalanced scope exit: no open scope")
	}
	w.liveDepth--
}

// Push descends the call tree to the child identified by id,
// constructing it from a fresh bundle of kinds if it doesn't already
// exist. Running global/thread init hooks for kinds is handled here,
// on first construction of each kind this worker has observed.
func (w *Worker) Push(id identity.Hash, key, tag string, kinds []string) *storage.Node {
	for _, k := range kinds {
		w.ensureInit(k)
	}
	template := bundle.New(key, tag, w.tree.Cursor().Depth()+1, id, kinds)
	return w.tree.Push(id, key, tag, template)
}

// Pop ascends the call tree by one level.
func (w *Worker) Pop() { w.tree.Pop() }

// NewEphemeral builds a throwaway bundle for a scope that entered
// past MaxDepth or while disabled: it is measured into like any other
// bundle so a report-on-exit caller still sees a value, but it is
// never attached to the call tree and never merged.
func (w *Worker) NewEphemeral(key, tag string, id identity.Hash, depth int, kinds []string) *bundle.Bundle {
	for _, k := range kinds {
		w.ensureInit(k)
	}
	return bundle.New(key, tag, depth, id, kinds)
}

// Kinds returns the manager's configured default component kinds.
func (w *Worker) Kinds() []string { return w.m.Kinds() }

// LogImmediate writes a report-on-exit summary line for a single,
// already-stopped bundle.
func (w *Worker) LogImmediate(b *bundle.Bundle) { w.m.logImmediate(b) }

func (w *Worker) ensureInit(kind string) {
	c, ok := component.New(kind)
	if !ok {
		return
	}
	if err := component.EnsureGlobalInit(kind, c); err != nil {
		w.m.logger.Warn("perfscope: component global init failed", "kind", kind, "err", err)
	}
	if w.threadInit[kind] {
		return
	}
	w.threadInit[kind] = true
	if ti, ok := c.(component.ThreadIniter); ok {
		if err := ti.ThreadInit(); err != nil {
			w.m.logger.Warn("perfscope: component thread init failed", "kind", kind, "err", err)
		}
	}
}
