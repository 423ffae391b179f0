// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/identity"
)

func template(key string, id identity.Hash) *bundle.Bundle {
	return bundle.New(key, "", 0, id, []string{"wall_clock"})
}

func TestPushCreatesAndReusesChild(t *testing.T) {
	tr := New()
	id := identity.Of(identity.Root, "a", 1)
	n1 := tr.Push(id, "a", "", template("a", id))
	tr.Pop()
	n2 := tr.Push(id, "a", "", template("a", id))
	assert.Same(t, n1, n2, "repeat visits to the same call site must reuse the node")
}

func TestPushDistinctIdentitiesCreateSiblings(t *testing.T) {
	tr := New()
	id1 := identity.Of(identity.Root, "a", 1)
	id2 := identity.Of(identity.Root, "b", 2)
	n1 := tr.Push(id1, "a", "", template("a", id1))
	tr.Pop()
	n2 := tr.Push(id2, "b", "", template("b", id2))
	assert.NotSame(t, n1, n2)
	assert.Len(t, tr.Root().Children(), 2)
}

func TestPopAtRootPanics(t *testing.T) {
	tr := New()
	assert.Panics(t, func() { tr.Pop() })
}

func TestWalkIsDepthFirstPreOrderInsertionOrder(t *testing.T) {
	tr := New()
	idA := identity.Of(identity.Root, "a", 1)
	tr.Push(idA, "a", "", template("a", idA))
	idAA := identity.Of(idA, "aa", 2)
	tr.Push(idAA, "aa", "", template("aa", idAA))
	tr.Pop()
	tr.Pop()
	idB := identity.Of(identity.Root, "b", 3)
	tr.Push(idB, "b", "", template("b", idB))
	tr.Pop()

	var order []string
	tr.Walk(func(n *Node) { order = append(order, n.Key()) })
	require.Equal(t, []string{"", "a", "aa", "b"}, order)
}

func TestMergeAddsAcrossTrees(t *testing.T) {
	t1, t2 := New(), New()
	id := identity.Of(identity.Root, "a", 1)
	n1 := t1.Push(id, "a", "", template("a", id))
	n1.Bundle().Start()
	n1.Bundle().Stop()
	t1.Pop()

	n2 := t2.Push(id, "a", "", template("a", id))
	n2.Bundle().Start()
	n2.Bundle().Stop()
	t2.Pop()

	t1.Merge(t2)
	merged := t1.Root().Children()[0]
	assert.Equal(t, 2, merged.Laps())
}

func TestMergeIsAssociative(t *testing.T) {
	mkTree := func(key string, line int) *Tree {
		tr := New()
		id := identity.Of(identity.Root, key, line)
		n := tr.Push(id, key, "", template(key, id))
		n.Bundle().Start()
		n.Bundle().Stop()
		tr.Pop()
		return tr
	}

	a, b, c := mkTree("x", 1), mkTree("x", 1), mkTree("x", 1)

	left := New()
	left.Merge(a)
	left.Merge(b)
	left.Merge(c)

	right := New()
	bc := New()
	bc.Merge(b)
	bc.Merge(c)
	right.Merge(a)
	right.Merge(bc)

	assert.Equal(t, left.Root().Children()[0].Laps(), right.Root().Children()[0].Laps())
}

func TestResetZerosAccumulatorsKeepsStructure(t *testing.T) {
	tr := New()
	id := identity.Of(identity.Root, "a", 1)
	n := tr.Push(id, "a", "", template("a", id))
	n.Bundle().Start()
	n.Bundle().Stop()
	tr.Pop()

	tr.Reset()
	assert.Equal(t, 0, tr.Root().Children()[0].Laps())
	assert.Len(t, tr.Root().Children(), 1)
}
