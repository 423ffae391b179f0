// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identity

import "testing"

func TestOfDependsOnlyOnParentKeyLine(t *testing.T) {
	a := Of(Root, "foo", 10)
	b := Of(Root, "foo", 10)
	if a != b {
		t.Fatalf("Of should be deterministic: %v != %v", a, b)
	}
}

func TestOfDistinguishesLines(t *testing.T) {
	a := Of(Root, "foo", 10)
	b := Of(Root, "foo", 11)
	if a == b {
		t.Fatalf("identities for distinct lines collided: %v", a)
	}
}

func TestOfDistinguishesParents(t *testing.T) {
	p1 := Of(Root, "outer1", 1)
	p2 := Of(Root, "outer2", 2)
	a := Of(p1, "inner", 5)
	b := Of(p2, "inner", 5)
	if a == b {
		t.Fatalf("identities under distinct parents collided: %v", a)
	}
}

func TestKeyHashStable(t *testing.T) {
	if KeyHash("abc") != KeyHash("abc") {
		t.Fatal("KeyHash is not stable across calls")
	}
}
