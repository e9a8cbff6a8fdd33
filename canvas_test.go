// seehuhn.de/go/scan - scan conversion of lines, curves and conics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scan

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

var on = pixel.Gray[uint8]{255}

// newGray returns a black canvas.  pixel.Image panics on out-of-range
// access, so the tests also check that nothing is drawn outside.
func newGray(w, h int) *pixel.Image[pixel.Gray[uint8]] {
	return pixel.New[pixel.Gray[uint8]](w, h)
}

// litPixels lists the non-black pixels of img, in row-major order.
func litPixels(img *pixel.Image[pixel.Gray[uint8]]) []grid.Point[int] {
	var res []grid.Point[int]
	for y := range img.Height {
		for x := range img.Width {
			if img.GetPixel(x, y) != (pixel.Gray[uint8]{}) {
				res = append(res, grid.Pt(x, y))
			}
		}
	}
	return res
}

// countingCanvas counts the number of writes to every pixel.
type countingCanvas struct {
	w, h   int
	writes map[grid.Point[int]]int
}

func newCountingCanvas(w, h int) *countingCanvas {
	return &countingCanvas{w: w, h: h, writes: make(map[grid.Point[int]]int)}
}

func (c *countingCanvas) Dimensions() (int, int) { return c.w, c.h }

func (c *countingCanvas) GetPixel(x, y int) pixel.Gray[uint8] {
	c.check(x, y)
	return pixel.Gray[uint8]{}
}

func (c *countingCanvas) DrawPixel(x, y int, _ pixel.Gray[uint8]) {
	c.check(x, y)
	c.writes[grid.Pt(x, y)]++
}

func (c *countingCanvas) check(x, y int) {
	if !inBounds(x, y, c.w, c.h) {
		panic("access outside canvas")
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{
		Overwrite:  "overwrite",
		AlphaBlend: "alpha-blend",
		Mode(7):    "Mode(7)",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}

func TestLayer(t *testing.T) {
	blue := pixel.RGBA[uint8]{0, 0, 255, 255}
	halfRed := pixel.RGBA[uint8]{255, 0, 0, 128}

	img := pixel.Filled(2, 1, blue)

	NewLayer[pixel.RGBA[uint8]](img, Overwrite).DrawPixel(0, 0, halfRed)
	if got := img.GetPixel(0, 0); got != halfRed {
		t.Errorf("overwrite: got %v, want %v", got, halfRed)
	}

	NewLayer[pixel.RGBA[uint8]](img, AlphaBlend).DrawPixel(1, 0, halfRed)
	want := pixel.RGBA[uint8]{128, 0, 127, 255}
	if got := img.GetPixel(1, 0); got != want {
		t.Errorf("alpha blend: got %v, want %v", got, want)
	}
}

func TestLayerKeepsOverlappingStrokes(t *testing.T) {
	clear := pixel.RGBA[uint8]{}
	stroke := pixel.RGBA[uint8]{255, 255, 255, 128}

	img := pixel.Filled(5, 5, clear)
	l := NewLayer[pixel.RGBA[uint8]](img, AlphaBlend)
	DrawLineSegment[pixel.RGBA[uint8]](l, vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 4, Y: 2}, stroke)
	DrawLineSegment[pixel.RGBA[uint8]](l, vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 4}, stroke)

	single := img.GetPixel(0, 2)[3]
	double := img.GetPixel(2, 2)[3]
	if double <= single {
		t.Errorf("crossing point has alpha %d, single stroke %d", double, single)
	}
	if img.GetPixel(0, 0) != clear {
		t.Error("pixel outside both strokes was modified")
	}
}

func TestFromRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(2, 3, 7, 8))
	c := FromRGBA(img)

	if w, h := c.Dimensions(); w != 5 || h != 5 {
		t.Fatalf("Dimensions: got %dx%d, want 5x5", w, h)
	}

	red := pixel.RGBA[uint8]{255, 0, 0, 255}
	DrawLineSegment(c, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 4}, red)

	for i := range 5 {
		got := img.RGBAAt(2+i, 3+i)
		if got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("pixel %d of the diagonal: got %v", i, got)
		}
	}
	if got := img.RGBAAt(3, 3); got != (color.RGBA{}) {
		t.Errorf("off-diagonal pixel: got %v", got)
	}
	if got := c.GetPixel(1, 1); got != red {
		t.Errorf("GetPixel(1, 1): got %v", got)
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	img := newGray(32, 32)
	DrawCubicBezierCurve(img,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 31, Y: 31},
		vec.Vec2{X: 31, Y: 0}, vec.Vec2{X: 0, Y: 31}, on)
	if !strings.Contains(buf.String(), "segments=") {
		t.Errorf("no segment count logged, got %q", buf.String())
	}

	buf.Reset()
	SetLogger(nil)
	DrawCubicBezierCurve(img,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 31, Y: 31},
		vec.Vec2{X: 31, Y: 0}, vec.Vec2{X: 0, Y: 31}, on)
	if buf.Len() != 0 {
		t.Errorf("default logger produced output: %q", buf.String())
	}
}
