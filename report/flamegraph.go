// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/perfscope/perfscope/component"
	"github.com/perfscope/perfscope/scale"
	"github.com/perfscope/perfscope/storage"
)

const (
	rowHeight  = 18
	minBoxSize = 1
)

var flameColors = []color.NRGBA{
	{230, 148, 87, 255},
	{230, 186, 87, 255},
	{200, 170, 120, 255},
	{180, 140, 90, 255},
}

// WidthScale selects how a node's measured value is mapped onto
// [0, rootTotal] before becoming a pixel width. WidthLinear is
// proportional to the raw value; WidthLog and WidthPower compress a
// wide dynamic range so that small nodes stay visible next to much
// larger siblings, at the cost of width no longer reading as a direct
// proportion.
type WidthScale int

const (
	WidthLinear WidthScale = iota
	WidthLog
	WidthPower
)

// Flamegraph renders tree as a PNG flame graph, one row per depth
// level, box width proportional (per mode) to each node's
// flamegraph-capable metric (wall_clock, if present and
// CapSupportsFlamegraph) relative to the root total. fontPath, if
// non-empty, names a TrueType font file used to label boxes wide
// enough to hold text; with fontPath empty, boxes are drawn
// unlabeled.
func Flamegraph(w io.Writer, tree *storage.Tree, width int, fontPath string, mode WidthScale) error {
	maxDepth := 0
	tree.Walk(func(n *storage.Node) {
		if n.Depth() > maxDepth {
			maxDepth = n.Depth()
		}
	})
	if maxDepth == 0 {
		maxDepth = 1
	}
	height := (maxDepth + 1) * rowHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	fa, err := loadFace(fontPath)
	if err != nil {
		fa = nil // labels are best-effort; an unreadable/missing font just skips them
	}

	// The root carries no accumulator, so its total is the sum of its
	// children's values.
	rootTotal := 0.0
	for _, c := range tree.Root().Children() {
		rootTotal += nodeWidthValue(c)
	}
	if rootTotal <= 0 {
		rootTotal = 1
	}
	widthScale, floor := newWidthScale(mode, rootTotal)

	var place func(n *storage.Node, x0 float64)
	place = func(n *storage.Node, x0 float64) {
		x := x0
		for _, c := range n.Children() {
			v := nodeWidthValue(c)
			if v < floor {
				v = floor
			}
			frac := widthScale.Of(v)
			boxW := int(frac * float64(width))
			if boxW < minBoxSize {
				boxW = minBoxSize
			}
			drawBox(img, fa, int(x), (c.Depth()-1)*rowHeight, boxW, rowHeight-1, c.Key(), c.Depth())
			place(c, x)
			x += float64(boxW)
		}
	}
	place(tree.Root(), 0)

	return png.Encode(w, img)
}

// newWidthScale builds the scale.Interface Flamegraph uses to turn a
// node's value into a [0,1] fraction of rootTotal, per mode, plus the
// floor value callers must clamp their input to before calling Of
// (scale.Log is undefined at and below zero).
func newWidthScale(mode WidthScale, rootTotal float64) (s scale.Interface, floor float64) {
	switch mode {
	case WidthLog:
		floor = rootTotal * 1e-6
		return scale.NewLog([]float64{floor, rootTotal}, 10), floor
	case WidthPower:
		return scale.NewPower([]float64{0, rootTotal}, 0.5), 0
	default:
		return scale.NewLinear([]float64{0, rootTotal}), 0
	}
}

// nodeWidthValue returns the flamegraph width metric for n: its
// wall_clock seconds if the bundle carries one and it advertises
// CapSupportsFlamegraph, else 0 (a leaf with no timing data gets a
// minimal sliver).
func nodeWidthValue(n *storage.Node) float64 {
	b := n.Bundle()
	if b == nil {
		return 0
	}
	wc, ok := b.Component("wall_clock").(interface {
		component.Component
		Seconds() float64
	})
	if !ok || wc.Capabilities()&component.CapSupportsFlamegraph == 0 {
		return 0
	}
	return wc.Seconds()
}

// fontAssets bundles the two representations a label needs: a
// font.Face (golang.org/x/image/font) to measure whether the label
// fits the box, and the underlying *truetype.Font a freetype.Context
// draws with.
type fontAssets struct {
	face font.Face
	ttf  *truetype.Font
}

func drawBox(img *image.RGBA, fa *fontAssets, x, y, w, h int, label string, depth int) {
	c := flameColors[depth%len(flameColors)]
	rect := image.Rect(x, y, x+w, y+h)
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
	if fa == nil || w < 10 {
		return
	}
	adv := font.MeasureString(fa.face, label)
	if adv.Round() > w-4 {
		return
	}
	ctx := freetype.NewContext()
	ctx.SetDst(img)
	ctx.SetClip(rect)
	ctx.SetSrc(image.NewUniform(color.Black))
	ctx.SetFont(fa.ttf)
	ctx.SetFontSize(11)
	_, _ = ctx.DrawString(label, freetype.Pt(x+2, y+h-4))
}

func loadFace(path string) (*fontAssets, error) {
	if path == "" {
		return nil, fmt.Errorf("report: no font path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 11})
	return &fontAssets{face: face, ttf: f}, nil
}
