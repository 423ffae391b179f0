// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"text/tabwriter"

	"github.com/perfscope/perfscope/storage"
)

// labelWidthHint grows monotonically across the process lifetime as
// wider labels are seen, so repeated Text calls (e.g. periodic
// snapshots) keep their label column aligned with the widest label
// ever printed rather than just the widest in the current tree.
var labelWidthHint atomic.Int64

func bumpLabelWidth(w int) {
	for {
		cur := labelWidthHint.Load()
		if int64(w) <= cur || labelWidthHint.CompareAndSwap(cur, int64(w)) {
			return
		}
	}
}

// Text writes a depth-first, indented text report of tree to w: one
// line per node, ranked by appearance order, with the node's tag,
// key, laps, and component values.
func Text(w io.Writer, tree *storage.Tree) error {
	tw := tabwriter.NewWriter(w, 2, 4, 1, ' ', 0)
	rank := 0
	var walkErr error
	tree.Walk(func(n *storage.Node) {
		if n.IsRoot() || walkErr != nil {
			return
		}
		rank++
		label := fmt.Sprintf("%s%s", strings.Repeat("  ", n.Depth()-1), indentPrefix(n.Depth()))
		label += displayKey(n.Tag(), n.Key())
		bumpLabelWidth(len(label))

		if _, err := fmt.Fprintf(tw, "#%-4d %-*s", rank, int(labelWidthHint.Load()), label); err != nil {
			walkErr = err
			return
		}
		if n.Tag() != "" {
			fmt.Fprintf(tw, " [%s]", n.Tag())
		}
		fmt.Fprint(tw, "\t")
		if b := n.Bundle(); b != nil {
			b.Print(tw)
			for _, c := range b.Components() {
				if v := formatVariance(c); v != "" {
					fmt.Fprint(tw, v)
				}
			}
			fmt.Fprintf(tw, "\t[laps: %d]", b.Laps())
		}
		fmt.Fprintln(tw)
	})
	if walkErr != nil {
		return walkErr
	}
	return tw.Flush()
}

func indentPrefix(depth int) string {
	if depth <= 0 {
		return ""
	}
	return "|_"
}
