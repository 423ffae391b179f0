// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfscope/perfscope/storage"
)

func TestFlamegraphEncodesAPNGWithoutAFont(t *testing.T) {
	tr := sampleTree(t)
	var buf bytes.Buffer

	require.NoError(t, Flamegraph(&buf, tr, 200, "", WidthLinear))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestFlamegraphOnEmptyTreeStillEncodes(t *testing.T) {
	tr := storage.New()
	var buf bytes.Buffer
	require.NoError(t, Flamegraph(&buf, tr, 64, "", WidthLinear))
	_, err := png.Decode(&buf)
	require.NoError(t, err)
}

func TestFlamegraphLogAndPowerScalesAlsoEncode(t *testing.T) {
	tr := sampleTree(t)
	for _, mode := range []WidthScale{WidthLog, WidthPower} {
		var buf bytes.Buffer
		require.NoError(t, Flamegraph(&buf, tr, 200, "", mode))
		_, err := png.Decode(&buf)
		require.NoError(t, err)
	}
}
