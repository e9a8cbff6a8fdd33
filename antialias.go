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
	"math"

	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

// BlendFunc combines the colour of a line with the existing colour of a
// pixel.  The weight is the fraction of the pixel covered by the line, in
// the range [0, 1].
//
// pixel.Interpolate[P] is a BlendFunc.
type BlendFunc[P any] func(line, existing P, weight float32) P

// DrawAntialiasedLineSegment draws an antialiased line from start to end
// onto c, using Wu's algorithm.  For every step along the major axis, the
// coverage is split between the two pixels nearest to the ideal line.
// If blend is nil, pixel.Interpolate is used.
//
// Pixels outside the canvas are skipped.
func DrawAntialiasedLineSegment[P pixel.Pixel[P]](c Canvas[P], start, end grid.Point[int], color P, blend BlendFunc[P]) {
	if blend == nil {
		blend = pixel.Interpolate[P]
	}
	width, height := c.Dimensions()

	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	plot := func(x, y int, weight float32) {
		if steep {
			x, y = y, x
		}
		if !inBounds(x, y, width, height) {
			return
		}
		c.DrawPixel(x, y, blend(color, c.GetPixel(x, y), weight))
	}

	var gradient float64
	if dx := x1 - x0; dx != 0 {
		gradient = float64(y1-y0) / float64(dx)
	}
	fy := float64(y0)
	for x := x0; x <= x1; x++ {
		iy := math.Floor(fy)
		frac := float32(fy - iy)
		plot(x, int(iy), 1-frac)
		plot(x, int(iy)+1, frac)
		fy += gradient
	}
}

// AntialiasedLineSegment returns a copy of img with an antialiased line
// from start to end drawn onto it.
func AntialiasedLineSegment[P pixel.Pixel[P]](img *pixel.Image[P], start, end grid.Point[int], color P, blend BlendFunc[P]) *pixel.Image[P] {
	out := img.Clone()
	DrawAntialiasedLineSegment[P](out, start, end, color, blend)
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
