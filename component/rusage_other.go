// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin

package component

// getrusageSelf has no portable implementation outside linux/darwin;
// CPU-time components degrade to unavailable rather than fail.
func getrusageSelf() (userSec, sysSec float64, ok bool) {
	return 0, 0, false
}
