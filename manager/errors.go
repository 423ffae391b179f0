// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import "fmt"

// FatalError signals a structural failure in the instrumentation
// library itself — an unbalanced scope exit (Worker.Exit with no open
// scope), or a worker attached after Finalize — as opposed to a recoverable
// condition such as a component that failed to construct. Library
// code never calls os.Exit or log.Fatal; instead it panics with a
// *FatalError, leaving the decision to recover and how to degrade to
// the caller.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("perfscope: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("perfscope: %s", e.Op)
}

func (e *FatalError) Unwrap() error { return e.Err }

func fatalf(op, format string, args ...any) {
	panic(&FatalError{Op: op, Err: fmt.Errorf(format, args...)})
}
