// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"os"
	"path/filepath"

	"github.com/perfscope/perfscope/storage"
)

// WriteAll writes both the text report and the JSON archive for tree
// under basePath: basePath+".out" and basePath+".json". If
// basePath names an existing directory, the files are written inside
// it under the name "perfscope". Parent directories are created as
// needed, and any existing files at the target paths are truncated.
func WriteAll(basePath string, tree *storage.Tree) error {
	base := basePath
	if base == "" {
		base = "."
	}
	if fi, err := os.Stat(base); err == nil && fi.IsDir() {
		base = filepath.Join(base, "perfscope")
	}
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return err
	}
	if err := writeText(base+".out", tree); err != nil {
		return err
	}
	return writeArchive(base+".json", tree)
}

func writeText(path string, tree *storage.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Text(f, tree)
}

// writeArchive serializes every measured node, depth-first in the
// same order Text prints, into a single JSON document.
func writeArchive(path string, tree *storage.Tree) error {
	var records []*orderedArchive
	tree.Walk(func(n *storage.Node) {
		b := n.Bundle()
		if b == nil {
			return
		}
		rec := newOrderedArchive()
		b.Serialize(rec)
		records = append(records, rec)
	})

	root := newOrderedArchive()
	root.Field("perfscope", records)

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
