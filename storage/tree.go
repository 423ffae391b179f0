// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"

	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/identity"
)

// Tree is a rooted, per-worker call tree with a mutable cursor
// pointing at the innermost open scope. A Tree is only ever touched
// by the worker that owns it, except at merge time, after that
// worker has released it.
type Tree struct {
	root   *Node
	cursor *Node
}

// New returns an empty Tree: a root node with the cursor parked on
// it. The root's accumulator is always nil — it is never measured,
// only ever a merge target.
func New() *Tree {
	root := newNode(identity.Root, 0, "", "", nil, nil)
	return &Tree{root: root, cursor: root}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Cursor returns the current node: the innermost open scope, or Root
// if no scope is open.
func (t *Tree) Cursor() *Node { return t.cursor }

// Push descends the cursor to the child identified by id, creating it
// from template if it doesn't already exist as a child of the current
// cursor. It never attaches an existing interior node from elsewhere
// in the tree — reuse is strictly "does the current cursor already
// have this child."
func (t *Tree) Push(id identity.Hash, key, tag string, template *bundle.Bundle) *Node {
	if child, ok := t.cursor.byID[id]; ok {
		t.cursor = child
		return child
	}
	child := newNode(id, t.cursor.depth+1, key, tag, t.cursor, template)
	t.cursor.children = append(t.cursor.children, child)
	t.cursor.byID[id] = child
	t.cursor = child
	return child
}

// Pop moves the cursor to its parent. Popping at the root is a
// programmer error (unbalanced scope) and panics rather than
// silently corrupting the tree.
func (t *Tree) Pop() {
	if t.cursor.IsRoot() {
		panic(fmt.Errorf("storage: pop at root: unbalanced scope enter/exit"))
	}
	t.cursor = t.cursor.parent
}

// Walk visits every node in the tree, depth-first pre-order, in
// deterministic (insertion) sibling order.
func (t *Tree) Walk(visit func(*Node)) {
	var rec func(*Node)
	rec = func(n *Node) {
		visit(n)
		for _, c := range n.children {
			rec(c)
		}
	}
	rec(t.root)
}

// Reset zeros every node's accumulator, preserving the tree's
// structure.
func (t *Tree) Reset() {
	t.Walk(func(n *Node) {
		if n.acc != nil {
			n.acc.Reset()
		}
	})
}

// Merge folds other's tree into t: for each path in other, the
// corresponding path in t is located or created, and accumulators and
// lap counters are added. Merge must be associative — merging
// A then B then C, in any order, produces the same tree — which holds
// here because Node identity is path-determined and Bundle.Add is
// required to be commutative/associative on accumulators. Merging
// with an empty tree is a no-op (other.root has no children).
func (t *Tree) Merge(other *Tree) {
	mergeInto(t.root, other.root)
}

func mergeInto(dst, src *Node) {
	for _, sc := range src.children {
		dc, ok := dst.byID[sc.id]
		if !ok {
			dc = newNode(sc.id, dst.depth+1, sc.key, sc.tag, dst, sc.acc)
			dst.children = append(dst.children, dc)
			dst.byID[sc.id] = dc
		}
		if sc.acc != nil {
			if dc.acc == nil {
				dc.acc = sc.acc.CloneEmpty()
			}
			dc.acc.Add(sc.acc)
		}
		mergeInto(dc, sc)
	}
}
