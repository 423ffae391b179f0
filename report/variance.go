// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/perfscope/perfscope/component"
)

// lapStdDev returns the lap-to-lap standard deviation of c's samples
// and whether c exposes any, for report's variance column. Two or
// fewer samples aren't enough to call a spread meaningful.
func lapStdDev(c component.Component) (float64, bool) {
	r, ok := c.(component.SampleRecorder)
	if !ok {
		return 0, false
	}
	xs := r.Samples()
	if len(xs) < 3 {
		return 0, false
	}
	sample := stats.Sample{Xs: xs}
	return sample.StdDev(), true
}

func formatVariance(c component.Component) string {
	sd, ok := lapStdDev(c)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" +/-%.6f", sd)
}
