// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

// rusageSample is embedded by the CPU-time components. It captures a
// starting (user, sys) pair from the OS and later hands back the
// delta since Start, following the same start/stop/delta shape as
// WallClock but sourced from getrusageSelf instead of time.Now.
type rusageSample struct {
	started             bool
	startUser, startSys float64
	available           bool
}

func (r *rusageSample) start() {
	u, s, ok := getrusageSelf()
	r.startUser, r.startSys, r.available = u, s, ok
	r.started = true
}

// delta returns the (user, sys) seconds elapsed since start, or
// ok == false if the sample was never started or the OS probe is
// unavailable on this platform.
func (r *rusageSample) delta() (userSec, sysSec float64, ok bool) {
	if !r.started || !r.available {
		return 0, 0, false
	}
	u, s, ok2 := getrusageSelf()
	if !ok2 {
		return 0, 0, false
	}
	return u - r.startUser, s - r.startSys, true
}
