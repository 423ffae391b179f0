// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report implements a depth-first text report of a call tree
// and a JSON archive that preserves bundle/component field order.
package report

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/perfscope/perfscope/component"
)

// orderedArchive implements component.Archive and json.Marshaler: Go
// maps don't preserve insertion order, and jsoniter's default map
// encoding wouldn't respect the bundle's static component order, so
// field order is tracked explicitly in parallel slices instead.
type orderedArchive struct {
	keys []string
	vals []any
}

func newOrderedArchive() *orderedArchive { return &orderedArchive{} }

func (a *orderedArchive) Field(name string, value any) {
	a.keys = append(a.keys, name)
	a.vals = append(a.vals, value)
}

func (a *orderedArchive) Object(name string) component.Archive {
	child := newOrderedArchive()
	a.Field(name, child)
	return child
}

// MarshalJSON writes the archive's fields as a JSON object in
// insertion order, the property jsoniter's map path can't give us.
func (a *orderedArchive) MarshalJSON() ([]byte, error) {
	var buf []byte
	buf = append(buf, '{')
	for i, k := range a.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		vb, err := json.Marshal(a.vals[i])
		if err != nil {
			return nil, err
		}
		buf = append(buf, vb...)
	}
	buf = append(buf, '}')
	return buf, nil
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary
