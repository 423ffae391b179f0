// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage implements the per-worker call tree: a rooted tree
// that de-duplicates identical call paths, aggregates repeated
// visits ("laps") into each node's accumulator bundle, and merges
// across workers at finalize.
package storage

import (
	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/identity"
)

// Node is one entry in a call tree. Within a parent, a node is
// uniquely identified by its identity hash; repeat visits are merged
// by accumulation rather than creating sibling duplicates.
type Node struct {
	id       identity.Hash
	depth    int
	key      string
	tag      string
	acc      *bundle.Bundle // nil only for the root, which is never measured
	parent   *Node
	children []*Node
	byID     map[identity.Hash]*Node // hint map for this node's children, refreshed on every attach
}

func newNode(id identity.Hash, depth int, key, tag string, parent *Node, template *bundle.Bundle) *Node {
	n := &Node{
		id:     id,
		depth:  depth,
		key:    key,
		tag:    tag,
		parent: parent,
		byID:   make(map[identity.Hash]*Node),
	}
	if template != nil {
		n.acc = template.CloneEmpty()
	}
	return n
}

func (n *Node) Identity() identity.Hash { return n.id }
func (n *Node) Depth() int              { return n.depth }
func (n *Node) Key() string             { return n.key }
func (n *Node) Tag() string             { return n.tag }
func (n *Node) Parent() *Node           { return n.parent }

// Bundle returns this node's accumulator bundle, or nil for the root.
func (n *Node) Bundle() *bundle.Bundle { return n.acc }

// Laps returns the node's lap count (its accumulator bundle's laps,
// or 0 for the root).
func (n *Node) Laps() int {
	if n.acc == nil {
		return 0
	}
	return n.acc.Laps()
}

// Children returns this node's children in insertion (first-visit)
// order — the deterministic sibling order Walk requires.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// IsRoot reports whether n is its tree's root.
func (n *Node) IsRoot() bool { return n.parent == nil }
