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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

// DrawHollowRect draws the outline of r onto c.
func DrawHollowRect[P any](c Canvas[P], r grid.Rect, color P) {
	left := float64(r.Left())
	right := float64(r.Right())
	top := float64(r.Top())
	bottom := float64(r.Bottom())

	DrawLineSegment(c, vec.Vec2{X: left, Y: top}, vec.Vec2{X: right, Y: top}, color)
	DrawLineSegment(c, vec.Vec2{X: left, Y: bottom}, vec.Vec2{X: right, Y: bottom}, color)
	DrawLineSegment(c, vec.Vec2{X: left, Y: top}, vec.Vec2{X: left, Y: bottom}, color)
	DrawLineSegment(c, vec.Vec2{X: right, Y: top}, vec.Vec2{X: right, Y: bottom}, color)
}

// DrawFilledRect sets every pixel of c inside r to color.
func DrawFilledRect[P any](c Canvas[P], r grid.Rect, color P) {
	width, height := c.Dimensions()
	if width <= 0 || height <= 0 {
		return
	}

	clip, ok := grid.At(0, 0).OfSize(width, height).Intersect(r)
	if !ok {
		logger().Debug("filled rectangle outside canvas", "rect", r)
		return
	}
	for y := clip.Top(); y <= clip.Bottom(); y++ {
		for x := clip.Left(); x <= clip.Right(); x++ {
			c.DrawPixel(x, y, color)
		}
	}
}

// HollowRect returns a copy of img with the outline of r drawn onto it.
func HollowRect[P pixel.Pixel[P]](img *pixel.Image[P], r grid.Rect, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawHollowRect[P](out, r, color)
	return out
}

// FilledRect returns a copy of img with r filled.
func FilledRect[P pixel.Pixel[P]](img *pixel.Image[P], r grid.Rect, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawFilledRect[P](out, r, color)
	return out
}
