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

package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a rectangular buffer of pixels, stored in row-major order.
// The pixel (x, y) is at Pix[y*Width+x].
//
// Image implements image.Image, so it can be passed to the encoders of
// the standard library.
type Image[P Pixel[P]] struct {
	Pix    []P
	Width  int
	Height int
}

// New allocates an image of the given size. All pixels are set to the
// zero value of P.
func New[P Pixel[P]](width, height int) *Image[P] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixel: invalid image size %dx%d", width, height))
	}
	return &Image[P]{
		Pix:    make([]P, width*height),
		Width:  width,
		Height: height,
	}
}

// Filled allocates an image of the given size with all pixels set to c.
func Filled[P Pixel[P]](width, height int, c P) *Image[P] {
	m := New[P](width, height)
	m.Fill(c)
	return m
}

// Fill sets every pixel of m to c.
func (m *Image[P]) Fill(c P) {
	for i := range m.Pix {
		m.Pix[i] = c
	}
}

// Dimensions returns the width and height of m.
func (m *Image[P]) Dimensions() (width, height int) {
	return m.Width, m.Height
}

// GetPixel returns the pixel at (x, y).
// It panics if (x, y) lies outside the image.
func (m *Image[P]) GetPixel(x, y int) P {
	return m.Pix[m.offset(x, y)]
}

// DrawPixel overwrites the pixel at (x, y).
// It panics if (x, y) lies outside the image.
func (m *Image[P]) DrawPixel(x, y int, c P) {
	m.Pix[m.offset(x, y)] = c
}

func (m *Image[P]) offset(x, y int) int {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		panic(fmt.Sprintf("pixel: (%d,%d) outside %dx%d image", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// Clone returns a deep copy of m.
func (m *Image[P]) Clone() *Image[P] {
	out := New[P](m.Width, m.Height)
	out.CopyFrom(m)
	return out
}

// CopyFrom overwrites all pixels of m with the pixels of src.
// It panics if the two images have different dimensions.
func (m *Image[P]) CopyFrom(src *Image[P]) {
	if m.Width != src.Width || m.Height != src.Height {
		panic(fmt.Sprintf("pixel: cannot copy %dx%d image into %dx%d image",
			src.Width, src.Height, m.Width, m.Height))
	}
	copy(m.Pix, src.Pix)
}

// ColorModel implements the image.Image interface.
func (m *Image[P]) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements the image.Image interface.
func (m *Image[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At implements the image.Image interface.
// Points outside the image are transparent.
func (m *Image[P]) At(x, y int) color.Color {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return color.RGBA64{}
	}
	return m.Pix[y*m.Width+x]
}
