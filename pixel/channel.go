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

// Package pixel implements fixed-arity pixel types over 8 and 16 bit
// channels, together with the channel arithmetic needed for blending,
// and a simple in-memory image buffer.
package pixel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Channel is the numeric representation of a single colour channel.
type Channel interface {
	~uint8 | ~uint16
}

// Number is the set of types which can be converted into channel values
// using Clamp.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxValue returns the largest value of the channel type C.
func MaxValue[C Channel]() C {
	return ^C(0)
}

// Clamp converts x to the channel type C. Values at or above the maximum
// of C map to the maximum, values at or below zero map to zero, and
// everything in between is truncated towards zero.
//
// Clamp panics if x is NaN, since no channel value represents it.
func Clamp[C Channel, N Number](x N) C {
	f := float64(x)
	if math.IsNaN(f) {
		panic("pixel: cannot convert NaN to a channel value")
	}
	hi := MaxValue[C]()
	if f >= float64(hi) {
		return hi
	}
	if f <= 0 {
		return 0
	}
	return C(x)
}

// to16 scales a channel value to the 16 bit range used by image/color.
func to16[C Channel](c C) uint32 {
	return uint32(uint64(c) * 0xffff / uint64(MaxValue[C]()))
}

// combine applies f channel by channel and stores the clamped results in
// out.
func combine[C Channel](out, a, b []C, f func(a, b float32) float32) {
	for i := range out {
		out[i] = Clamp[C](f(float32(a[i]), float32(b[i])))
	}
}

// overAlpha composites fg over bg and stores the result in out. The last
// channel of each slice is alpha; colour channels are not premultiplied.
func overAlpha[C Channel](out, fg, bg []C) {
	maxC := float64(MaxValue[C]())
	n := len(out) - 1

	fa := float64(fg[n]) / maxC
	ba := float64(bg[n]) / maxC
	a := ba + fa - ba*fa
	if a == 0 {
		copy(out, bg)
		return
	}

	for i := range n {
		fc := float64(fg[i]) / maxC * fa
		bc := float64(bg[i]) / maxC * ba
		out[i] = Clamp[C](math.Round(maxC * (fc + bc*(1-fa)) / a))
	}
	out[n] = Clamp[C](math.Round(maxC * a))
}
