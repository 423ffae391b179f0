// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import "context"

type workerKey struct{}

// AttachContext attaches a new Worker to Master and returns a context
// carrying it: a context.Context standing in for the thread-local
// handle C++ implementations rely on. Callers release the worker by
// calling the returned Worker's Close, typically via defer right
// after AttachContext.
func AttachContext(ctx context.Context) (context.Context, *Worker) {
	w := Master().Attach()
	return context.WithValue(ctx, workerKey{}, w), w
}

// WorkerFromContext returns the Worker carried by ctx, if any.
func WorkerFromContext(ctx context.Context) (*Worker, bool) {
	w, ok := ctx.Value(workerKey{}).(*Worker)
	return w, ok
}

// FromContext returns the Worker carried by ctx, attaching a new one
// against Master if none is present. The auto-attached worker is not
// tied to ctx's lifetime — callers that care about releasing it
// promptly should call AttachContext explicitly up front instead.
func FromContext(ctx context.Context) *Worker {
	if w, ok := WorkerFromContext(ctx); ok {
		return w
	}
	return Master().Attach()
}
