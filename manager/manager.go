// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manager implements the process/thread registry: a master
// instance holding global enable/depth/kind configuration, a registry
// of live per-worker call trees, and the merge pool that Finalize
// folds down to a single tree for reporting.
package manager

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/report"
	"github.com/perfscope/perfscope/storage"
)

// Manager owns the process-wide configuration and the registry of
// attached workers. The zero value is not usable; construct one with
// New, or use the process-wide singleton via Master.
type Manager struct {
	enabled  atomic.Bool
	maxDepth atomic.Int64
	kindsMu  sync.RWMutex
	kinds    []string

	autoListInit []string

	mu      sync.Mutex
	workers map[*Worker]struct{}
	merged  *storage.Tree
	closed  bool

	outputMu   sync.Mutex
	out        io.Writer
	outputPath string

	logger *slog.Logger
}

// New constructs a Manager from cfg. Most callers want Master, the
// process-wide singleton seeded from the environment; New exists for
// tests and for hosting applications that want an isolated instance.
func New(cfg Config) *Manager {
	m := &Manager{
		workers:    make(map[*Worker]struct{}),
		out:        os.Stdout,
		outputPath: cfg.OutputPath,
		logger:     slog.Default(),
	}
	m.enabled.Store(cfg.Enabled)
	m.maxDepth.Store(int64(cfg.MaxDepth))
	kinds := cfg.Kinds
	if len(kinds) == 0 {
		kinds = defaultKinds()
	}
	m.kinds = append([]string(nil), kinds...)
	m.autoListInit = append([]string(nil), cfg.AutoListInit...)
	return m
}

var (
	masterOnce sync.Once
	master     *Manager
)

// Master returns the process-wide Manager, constructing it from
// ConfigFromEnv on first use.
func Master() *Manager {
	masterOnce.Do(func() {
		master = New(ConfigFromEnv())
	})
	return master
}

// Enabled reports whether scopes currently measure and record.
func (m *Manager) Enabled() bool { return m.enabled.Load() }

// SetEnabled toggles measurement process-wide, effective for scopes
// entered after the call.
func (m *Manager) SetEnabled(v bool) { m.enabled.Store(v) }

// MaxDepth returns the current tracked-depth ceiling.
func (m *Manager) MaxDepth() int { return int(m.maxDepth.Load()) }

// SetMaxDepth adjusts the tracked-depth ceiling.
func (m *Manager) SetMaxDepth(n int) { m.maxDepth.Store(int64(n)) }

// Kinds returns the component kinds new scopes measure by default.
func (m *Manager) Kinds() []string {
	m.kindsMu.RLock()
	defer m.kindsMu.RUnlock()
	return append([]string(nil), m.kinds...)
}

// SetKinds replaces the default component kind list for scopes
// entered after the call.
func (m *Manager) SetKinds(kinds []string) {
	m.kindsMu.Lock()
	defer m.kindsMu.Unlock()
	m.kinds = append([]string(nil), kinds...)
}

// SetRecordMemory toggles "peak_rss" participation in the default
// component kind list, without disturbing the position of any other
// kind already present.
func (m *Manager) SetRecordMemory(on bool) {
	m.kindsMu.Lock()
	defer m.kindsMu.Unlock()

	has := false
	for _, k := range m.kinds {
		if k == "peak_rss" {
			has = true
			break
		}
	}
	switch {
	case on && !has:
		m.kinds = append(m.kinds, "peak_rss")
	case !on && has:
		filtered := m.kinds[:0:0]
		for _, k := range m.kinds {
			if k != "peak_rss" {
				filtered = append(filtered, k)
			}
		}
		m.kinds = filtered
	}
}

// SetLogger overrides the manager's structured logger, which defaults
// to slog.Default().
func (m *Manager) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	m.logger = l
}

// SetOutputPath overrides the directory/basename prefix Finalize
// writes its text and JSON reports under.
func (m *Manager) SetOutputPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputPath = path
}

// SetOutput overrides the writer immediate (report-on-exit) scope
// summaries are written to; it defaults to os.Stdout.
func (m *Manager) SetOutput(w io.Writer) {
	m.outputMu.Lock()
	defer m.outputMu.Unlock()
	m.out = w
}

// logImmediate writes a single already-stopped bundle's summary line,
// serialized against concurrent reportOnExit scopes across workers.
func (m *Manager) logImmediate(b *bundle.Bundle) {
	m.outputMu.Lock()
	defer m.outputMu.Unlock()
	fmt.Fprintln(m.out, b.String())
}

// Attach registers a new Worker — the library's stand-in for
// thread-local storage — and returns it. Callers must Close the
// Worker when the owning goroutine is done with it, typically via
// defer.
func (m *Manager) Attach() *Worker {
	w := &Worker{
		m:          m,
		tree:       storage.New(),
		threadInit: make(map[string]bool),
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		fatalf("Attach", "manager already finalized")
	}
	m.workers[w] = struct{}{}
	m.mu.Unlock()

	// AUTO_LIST_INIT: eagerly run global/thread init for the
	// configured kinds on attach, rather than waiting for the first
	// scope that happens to use them.
	for _, k := range m.autoListInit {
		w.ensureInit(k)
	}
	return w
}

// release folds w's tree into the merge pool and removes w from the
// live registry. Called by Worker.Close.
func (m *Manager) release(w *Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workers, w)
	if w.tree.Cursor() != w.tree.Root() {
		m.logger.Warn("perfscope: worker closed with open scopes", "depth", w.liveDepth)
	}
	if m.merged == nil {
		m.merged = storage.New()
	}
	m.merged.Merge(w.tree)
}

// liveWorkerCount reports the number of attached, not-yet-closed
// workers; used by tests asserting registry bookkeeping.
func (m *Manager) liveWorkerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

// Finalize merges every released worker's contribution into a single
// tree and hands it to the report package for text and JSON output
// under m's configured output path. Finalize expects every Worker to
// have been Close'd first: workers still attached when it runs are not
// included in the report. Their later Close still folds them into the
// merge pool, but Finalize is not rerun, and Attach panics once
// Finalize has been called.
func (m *Manager) Finalize() error {
	m.mu.Lock()
	m.closed = true
	tree := m.merged
	if tree == nil {
		tree = storage.New()
	}
	path := m.outputPath
	logger := m.logger
	m.mu.Unlock()

	logger.Info("perfscope: finalizing", "output_path", path)
	return report.WriteAll(path, tree)
}
