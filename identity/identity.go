// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package identity computes the stable 64-bit call-site identity hash
// that the call tree (package storage) keys nodes by.
package identity

import "github.com/cespare/xxhash/v2"

// Hash is a 64-bit call-site identity. Collisions are possible and
// accepted: they merely merge two distinct call sites into one node.
type Hash uint64

// Root is the identity of a call tree's root node, which never
// corresponds to a real scope.
const Root Hash = 0

// KeyHash returns a stable 64-bit hash of key using xxhash.
func KeyHash(key string) Hash {
	return Hash(xxhash.Sum64String(key))
}

// Local computes local_hash = line*10 + hash(key). The *10 spacing
// keeps adjacent lines sharing a key from colliding.
func Local(key string, line int) Hash {
	return Hash(line*10) + KeyHash(key)
}

// Of computes a full call-site identity from a parent identity and a
// (key, line) pair: identity = parent_hash + local_hash. Identity
// depends only on (parent, key, line), never on measured values.
func Of(parent Hash, key string, line int) Hash {
	return parent + Local(key, line)
}
