// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin

package component

import "syscall"

// getrusageSelf returns the process's cumulative user and system CPU
// time in seconds, per getrusage(RUSAGE_SELF).
func getrusageSelf() (userSec, sysSec float64, ok bool) {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, false
	}
	return timevalSeconds(ru.Utime), timevalSeconds(ru.Stime), true
}

func timevalSeconds(tv syscall.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
