// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import "sync"

var globalInitDone sync.Map // kind string -> *sync.Once

// EnsureGlobalInit runs c's GlobalInit exactly once per process for
// kind, if c implements GlobalIniter; it is a no-op otherwise. The
// manager package calls this on first observation of a kind, but the
// bookkeeping lives here because the kind registry itself is already
// process-global.
func EnsureGlobalInit(kind string, c Component) error {
	gi, ok := c.(GlobalIniter)
	if !ok {
		return nil
	}
	v, _ := globalInitDone.LoadOrStore(kind, new(sync.Once))
	once := v.(*sync.Once)
	var err error
	once.Do(func() { err = gi.GlobalInit() })
	return err
}
