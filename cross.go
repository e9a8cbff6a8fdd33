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
	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

// crossStencil marks the cells of the 3x3 neighbourhood covered by a cross.
var crossStencil = [3][3]bool{
	{false, true, false},
	{true, true, true},
	{false, true, false},
}

// DrawCross stamps a small plus sign, three pixels wide and high, centred
// at the given point.
func DrawCross[P any](c Canvas[P], center grid.Point[int], color P) {
	width, height := c.Dimensions()
	for sy := -1; sy <= 1; sy++ {
		y := center.Y + sy
		if y < 0 || y >= height {
			continue
		}
		for sx := -1; sx <= 1; sx++ {
			x := center.X + sx
			if x < 0 || x >= width {
				continue
			}
			if crossStencil[sy+1][sx+1] {
				c.DrawPixel(x, y, color)
			}
		}
	}
}

// Cross returns a copy of img with a cross stamped onto it.
func Cross[P pixel.Pixel[P]](img *pixel.Image[P], center grid.Point[int], color P) *pixel.Image[P] {
	out := img.Clone()
	DrawCross[P](out, center, color)
	return out
}
