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

import "image/color"

// Pixel is the set of operations the drawing code needs from a pixel
// type P. All pixel types in this package implement Pixel for every
// channel type.
//
// Colour channels are not premultiplied by alpha.
type Pixel[P any] interface {
	comparable
	color.Color

	// NumChannels returns the number of channels, including alpha.
	NumChannels() int

	// Black returns the darkest opaque value of the pixel type.
	Black() P

	// White returns the value with all channels at their maximum.
	White() P

	// Over composites the receiver over dst. Types without an alpha
	// channel return the receiver unchanged.
	Over(dst P) P

	// Combine applies f to every pair of corresponding channels and
	// saturates the results into the channel type.
	Combine(other P, f func(a, b float32) float32) P
}

// Black returns the black value of the pixel type P.
func Black[P Pixel[P]]() P {
	var p P
	return p.Black()
}

// White returns the white value of the pixel type P.
func White[P Pixel[P]]() P {
	var p P
	return p.White()
}

// Gray is a luminance pixel.
type Gray[C Channel] [1]C

// NumChannels implements the Pixel interface.
func (p Gray[C]) NumChannels() int { return 1 }

// Black implements the Pixel interface.
func (p Gray[C]) Black() Gray[C] { return Gray[C]{0} }

// White implements the Pixel interface.
func (p Gray[C]) White() Gray[C] { return Gray[C]{MaxValue[C]()} }

// Over implements the Pixel interface.
func (p Gray[C]) Over(dst Gray[C]) Gray[C] { return p }

// Combine implements the Pixel interface.
func (p Gray[C]) Combine(q Gray[C], f func(a, b float32) float32) Gray[C] {
	var out Gray[C]
	combine(out[:], p[:], q[:], f)
	return out
}

// RGBA implements the color.Color interface.
func (p Gray[C]) RGBA() (r, g, b, a uint32) {
	y := to16(p[0])
	return y, y, y, 0xffff
}

// GrayA is a luminance pixel with alpha.
type GrayA[C Channel] [2]C

// NumChannels implements the Pixel interface.
func (p GrayA[C]) NumChannels() int { return 2 }

// Black implements the Pixel interface.
func (p GrayA[C]) Black() GrayA[C] { return GrayA[C]{0, MaxValue[C]()} }

// White implements the Pixel interface.
func (p GrayA[C]) White() GrayA[C] { return GrayA[C]{MaxValue[C](), MaxValue[C]()} }

// Over implements the Pixel interface.
func (p GrayA[C]) Over(dst GrayA[C]) GrayA[C] {
	var out GrayA[C]
	overAlpha(out[:], p[:], dst[:])
	return out
}

// Combine implements the Pixel interface.
func (p GrayA[C]) Combine(q GrayA[C], f func(a, b float32) float32) GrayA[C] {
	var out GrayA[C]
	combine(out[:], p[:], q[:], f)
	return out
}

// RGBA implements the color.Color interface.
func (p GrayA[C]) RGBA() (r, g, b, a uint32) {
	a = to16(p[1])
	y := to16(p[0]) * a / 0xffff
	return y, y, y, a
}

// RGB is a red, green, blue pixel.
type RGB[C Channel] [3]C

// NumChannels implements the Pixel interface.
func (p RGB[C]) NumChannels() int { return 3 }

// Black implements the Pixel interface.
func (p RGB[C]) Black() RGB[C] { return RGB[C]{} }

// White implements the Pixel interface.
func (p RGB[C]) White() RGB[C] {
	m := MaxValue[C]()
	return RGB[C]{m, m, m}
}

// Over implements the Pixel interface.
func (p RGB[C]) Over(dst RGB[C]) RGB[C] { return p }

// Combine implements the Pixel interface.
func (p RGB[C]) Combine(q RGB[C], f func(a, b float32) float32) RGB[C] {
	var out RGB[C]
	combine(out[:], p[:], q[:], f)
	return out
}

// RGBA implements the color.Color interface.
func (p RGB[C]) RGBA() (r, g, b, a uint32) {
	return to16(p[0]), to16(p[1]), to16(p[2]), 0xffff
}

// RGBA is a red, green, blue pixel with alpha.
type RGBA[C Channel] [4]C

// NumChannels implements the Pixel interface.
func (p RGBA[C]) NumChannels() int { return 4 }

// Black implements the Pixel interface.
func (p RGBA[C]) Black() RGBA[C] { return RGBA[C]{0, 0, 0, MaxValue[C]()} }

// White implements the Pixel interface.
func (p RGBA[C]) White() RGBA[C] {
	m := MaxValue[C]()
	return RGBA[C]{m, m, m, m}
}

// Over implements the Pixel interface.
func (p RGBA[C]) Over(dst RGBA[C]) RGBA[C] {
	var out RGBA[C]
	overAlpha(out[:], p[:], dst[:])
	return out
}

// Combine implements the Pixel interface.
func (p RGBA[C]) Combine(q RGBA[C], f func(a, b float32) float32) RGBA[C] {
	var out RGBA[C]
	combine(out[:], p[:], q[:], f)
	return out
}

// RGBA implements the color.Color interface.
func (p RGBA[C]) RGBA() (r, g, b, a uint32) {
	a = to16(p[3])
	r = to16(p[0]) * a / 0xffff
	g = to16(p[1]) * a / 0xffff
	b = to16(p[2]) * a / 0xffff
	return r, g, b, a
}

// BGR is a blue, green, red pixel.
type BGR[C Channel] [3]C

// NumChannels implements the Pixel interface.
func (p BGR[C]) NumChannels() int { return 3 }

// Black implements the Pixel interface.
func (p BGR[C]) Black() BGR[C] { return BGR[C]{} }

// White implements the Pixel interface.
func (p BGR[C]) White() BGR[C] {
	m := MaxValue[C]()
	return BGR[C]{m, m, m}
}

// Over implements the Pixel interface.
func (p BGR[C]) Over(dst BGR[C]) BGR[C] { return p }

// Combine implements the Pixel interface.
func (p BGR[C]) Combine(q BGR[C], f func(a, b float32) float32) BGR[C] {
	var out BGR[C]
	combine(out[:], p[:], q[:], f)
	return out
}

// RGBA implements the color.Color interface.
func (p BGR[C]) RGBA() (r, g, b, a uint32) {
	return to16(p[2]), to16(p[1]), to16(p[0]), 0xffff
}

// BGRA is a blue, green, red pixel with alpha.
type BGRA[C Channel] [4]C

// NumChannels implements the Pixel interface.
func (p BGRA[C]) NumChannels() int { return 4 }

// Black implements the Pixel interface.
func (p BGRA[C]) Black() BGRA[C] { return BGRA[C]{0, 0, 0, MaxValue[C]()} }

// White implements the Pixel interface.
func (p BGRA[C]) White() BGRA[C] {
	m := MaxValue[C]()
	return BGRA[C]{m, m, m, m}
}

// Over implements the Pixel interface.
func (p BGRA[C]) Over(dst BGRA[C]) BGRA[C] {
	var out BGRA[C]
	overAlpha(out[:], p[:], dst[:])
	return out
}

// Combine implements the Pixel interface.
func (p BGRA[C]) Combine(q BGRA[C], f func(a, b float32) float32) BGRA[C] {
	var out BGRA[C]
	combine(out[:], p[:], q[:], f)
	return out
}

// RGBA implements the color.Color interface.
func (p BGRA[C]) RGBA() (r, g, b, a uint32) {
	a = to16(p[3])
	r = to16(p[2]) * a / 0xffff
	g = to16(p[1]) * a / 0xffff
	b = to16(p[0]) * a / 0xffff
	return r, g, b, a
}
