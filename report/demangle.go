// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "github.com/ianlancetaylor/demangle"

// displayKey returns key demangled if tag marks it as a mangled C++
// symbol (callers instrumenting cgo or FFI boundaries tag such scopes
// "c++"); demangle.Filter leaves anything it doesn't recognize as a
// mangled name untouched, so this is safe to call unconditionally.
func displayKey(tag, key string) string {
	if tag != "c++" && tag != "cxx" {
		return key
	}
	return demangle.Filter(key)
}
