// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package component

// currentRSSBytes has no portable non-Linux implementation here;
// peak_rss degrades to unavailable on these platforms.
func currentRSSBytes() (uint64, bool) {
	return 0, false
}
