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
	"fmt"
	"image"

	"seehuhn.de/go/scan/pixel"
)

// Canvas is a pixel surface which the drawing functions can target.
//
// GetPixel and DrawPixel are only ever called with 0 <= x < width and
// 0 <= y < height. What happens for other coordinates is up to the
// implementation.
type Canvas[P any] interface {
	Dimensions() (width, height int)
	GetPixel(x, y int) P
	DrawPixel(x, y int, c P)
}

// Mode selects how a Layer writes pixels.
type Mode int

const (
	// Overwrite replaces the existing pixel.
	Overwrite Mode = iota

	// AlphaBlend composites the new pixel over the existing one.
	AlphaBlend
)

func (m Mode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case AlphaBlend:
		return "alpha-blend"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Layer wraps a canvas and writes to it according to Mode.
// With AlphaBlend, overlapping strokes keep the coverage of their
// antialiased edges instead of erasing each other.
type Layer[P pixel.Pixel[P]] struct {
	Canvas[P]
	Mode Mode
}

// NewLayer returns a Layer which draws onto c using the given mode.
func NewLayer[P pixel.Pixel[P]](c Canvas[P], mode Mode) *Layer[P] {
	return &Layer[P]{Canvas: c, Mode: mode}
}

// DrawPixel writes c to (x, y) according to the layer's mode.
func (l *Layer[P]) DrawPixel(x, y int, c P) {
	if l.Mode == AlphaBlend {
		c = c.Over(l.Canvas.GetPixel(x, y))
	}
	l.Canvas.DrawPixel(x, y, c)
}

// FromRGBA returns a canvas which draws onto img. The bytes stored in
// img are read and written unchanged, in R, G, B, A order.
func FromRGBA(img *image.RGBA) Canvas[pixel.RGBA[uint8]] {
	return rgbaCanvas{img: img}
}

type rgbaCanvas struct {
	img *image.RGBA
}

func (c rgbaCanvas) Dimensions() (width, height int) {
	b := c.img.Rect
	return b.Dx(), b.Dy()
}

func (c rgbaCanvas) GetPixel(x, y int) pixel.RGBA[uint8] {
	i := c.img.PixOffset(x+c.img.Rect.Min.X, y+c.img.Rect.Min.Y)
	s := c.img.Pix[i : i+4 : i+4]
	return pixel.RGBA[uint8]{s[0], s[1], s[2], s[3]}
}

func (c rgbaCanvas) DrawPixel(x, y int, p pixel.RGBA[uint8]) {
	i := c.img.PixOffset(x+c.img.Rect.Min.X, y+c.img.Rect.Min.Y)
	copy(c.img.Pix[i:i+4], p[:])
}

func inBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

func drawIfInBounds[P any](c Canvas[P], x, y int, color P) {
	width, height := c.Dimensions()
	if inBounds(x, y, width, height) {
		c.DrawPixel(x, y, color)
	}
}
