// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfscope/perfscope/bundle"
	"github.com/perfscope/perfscope/identity"
	"github.com/perfscope/perfscope/storage"
)

func sampleTree(t *testing.T) *storage.Tree {
	t.Helper()
	tr := storage.New()
	id := identity.Of(identity.Root, "work", 1)
	tmpl := bundle.New("work", "", 0, id, []string{"wall_clock"})
	n := tr.Push(id, "work", "", tmpl)
	n.Bundle().Start()
	n.Bundle().Stop()
	tr.Pop()
	return tr
}

func TestTextReportsRankKeyAndLaps(t *testing.T) {
	tr := sampleTree(t)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tr))

	out := buf.String()
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "[laps: 1]")
}

func TestTextSkipsRoot(t *testing.T) {
	tr := storage.New()
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tr))
	assert.Empty(t, buf.String())
}

func TestOrderedArchivePreservesFieldOrder(t *testing.T) {
	a := newOrderedArchive()
	a.Field("z", 1)
	a.Field("a", 2)
	child := a.Object("nested")
	child.Field("inner", 3)

	data, err := a.MarshalJSON()
	require.NoError(t, err)

	// Field order in the raw bytes must match insertion order, not
	// the alphabetical order encoding/json's map path would give.
	zIdx := bytes.Index(data, []byte(`"z"`))
	aIdx := bytes.Index(data, []byte(`"a"`))
	require.NotEqual(t, -1, zIdx)
	require.NotEqual(t, -1, aIdx)
	assert.Less(t, zIdx, aIdx)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	nested := decoded["nested"].(map[string]any)
	assert.Equal(t, float64(3), nested["inner"])
}

func TestWriteAllWritesTextAndArchive(t *testing.T) {
	dir := t.TempDir()
	tr := sampleTree(t)

	require.NoError(t, WriteAll(dir, tr))

	txt, err := os.ReadFile(filepath.Join(dir, "perfscope.out"))
	require.NoError(t, err)
	assert.Contains(t, string(txt), "work")

	raw, err := os.ReadFile(filepath.Join(dir, "perfscope.json"))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	records, ok := doc["perfscope"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	rec := records[0].(map[string]any)
	assert.Equal(t, "work", rec["key"])
}

func TestWriteAllTreatsBasePathAsPrefixWhenNotADirectory(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "run1")
	tr := sampleTree(t)

	require.NoError(t, WriteAll(base, tr))

	_, err := os.Stat(base + ".out")
	assert.NoError(t, err)
	_, err = os.Stat(base + ".json")
	assert.NoError(t, err)
}

func TestWriteAllCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "nested", "run1")
	tr := sampleTree(t)

	require.NoError(t, WriteAll(base, tr))

	_, err := os.Stat(base + ".out")
	assert.NoError(t, err)
	_, err = os.Stat(base + ".json")
	assert.NoError(t, err)
}

func TestLapStdDevRequiresAtLeastThreeSamples(t *testing.T) {
	id := identity.Of(identity.Root, "k", 1)
	b := bundle.New("k", "", 0, id, []string{"wall_clock"})

	b.Start()
	b.Stop()
	b.Start()
	b.Stop()
	assert.Empty(t, formatVariance(b.Component("wall_clock")))

	b.Start()
	b.Stop()
	assert.NotEmpty(t, formatVariance(b.Component("wall_clock")))
}

func TestDisplayKeyDemanglesOnlyCxxTags(t *testing.T) {
	assert.Equal(t, "_ZN3fooEv", displayKey("", "_ZN3fooEv"))
	assert.Equal(t, "_ZN3fooEv", displayKey("go", "_ZN3fooEv"))
	// A well-formed Itanium mangled name demangles under the "c++" tag.
	assert.Equal(t, "foo()", displayKey("c++", "_Z3foov"))
}
