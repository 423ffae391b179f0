// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

// SampleRecorder is implemented by components that retain a trail of
// individual lap values (as opposed to only their running total), so
// that report can compute lap-to-lap variance. Most components don't
// keep this trail; report treats its absence as "no variance column
// for this kind."
type SampleRecorder interface {
	Samples() []float64
}
