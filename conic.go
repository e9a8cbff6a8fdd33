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

// symmetricPlot renders one group of symmetric boundary points of a conic
// centred at (cx, cy).  The offset (x, y) is in the first quadrant.
type symmetricPlot func(cx, cy, x, y int)

// quadPoints plots the four mirror images of (x, y).
func quadPoints[P any](c Canvas[P], color P) symmetricPlot {
	return func(cx, cy, x, y int) {
		drawIfInBounds(c, cx+x, cy+y, color)
		drawIfInBounds(c, cx-x, cy+y, color)
		drawIfInBounds(c, cx+x, cy-y, color)
		drawIfInBounds(c, cx-x, cy-y, color)
	}
}

// quadSpans fills the two scanlines through the mirror images of (x, y).
func quadSpans[P any](c Canvas[P], color P) symmetricPlot {
	return func(cx, cy, x, y int) {
		span(c, cx-x, cx+x, cy+y, color)
		span(c, cx-x, cx+x, cy-y, color)
	}
}

// octantPoints plots the eight mirror images of (x, y) and (y, x).
func octantPoints[P any](c Canvas[P], color P) symmetricPlot {
	return func(cx, cy, x, y int) {
		drawIfInBounds(c, cx+x, cy+y, color)
		drawIfInBounds(c, cx+y, cy+x, color)
		drawIfInBounds(c, cx-y, cy+x, color)
		drawIfInBounds(c, cx-x, cy+y, color)
		drawIfInBounds(c, cx-x, cy-y, color)
		drawIfInBounds(c, cx-y, cy-x, color)
		drawIfInBounds(c, cx+y, cy-x, color)
		drawIfInBounds(c, cx+x, cy-y, color)
	}
}

// octantSpans fills the four scanlines through the mirror images of
// (x, y) and (y, x).
func octantSpans[P any](c Canvas[P], color P) symmetricPlot {
	return func(cx, cy, x, y int) {
		span(c, cx-x, cx+x, cy+y, color)
		span(c, cx-y, cx+y, cy+x, color)
		span(c, cx-x, cx+x, cy-y, color)
		span(c, cx-y, cx+y, cy-x, color)
	}
}

func span[P any](c Canvas[P], x0, x1, y int, color P) {
	DrawLineSegment(c,
		vec.Vec2{X: float64(x0), Y: float64(y)},
		vec.Vec2{X: float64(x1), Y: float64(y)},
		color)
}

// midpointEllipse walks the first quadrant of the axis-aligned ellipse with
// the given radii, using the two-region midpoint algorithm.  Region 1 steps
// in x while the slope of the boundary is below 1, region 2 then steps
// in y down to the horizontal axis.
func midpointEllipse(center grid.Point[int], widthRadius, heightRadius int, plot symmetricPlot) {
	cx, cy := center.X, center.Y
	w2 := widthRadius * widthRadius
	h2 := heightRadius * heightRadius

	x := 0
	y := heightRadius
	px := 0
	py := 2 * w2 * y

	plot(cx, cy, x, y)

	p := float64(h2-w2*heightRadius) + 0.25*float64(w2)
	for px < py {
		x++
		px += 2 * h2
		if p < 0 {
			p += float64(h2 + px)
		} else {
			y--
			py -= 2 * w2
			p += float64(h2 + px - py)
		}
		plot(cx, cy, x, y)
	}

	xh := float64(x) + 0.5
	p = float64(h2)*xh*xh + float64(w2*(y-1)*(y-1)) - float64(w2*h2)
	for y > 0 {
		y--
		py -= 2 * w2
		if p > 0 {
			p += float64(w2 - py)
		} else {
			x++
			px += 2 * h2
			p += float64(w2 - py + px)
		}
		plot(cx, cy, x, y)
	}
}

// midpointCircle walks one octant of the circle with the given radius,
// from the top of the circle until x and y meet.  Nothing is plotted for
// negative radii.
func midpointCircle(center grid.Point[int], radius int, plot symmetricPlot) {
	x := 0
	y := radius
	p := 1 - radius
	for x <= y {
		plot(center.X, center.Y, x, y)
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
}

// DrawHollowEllipse draws the outline of an axis-aligned ellipse onto c.
// Ellipses with equal radii are drawn as circles.
// Nothing is drawn if one of the radii is negative.
func DrawHollowEllipse[P any](c Canvas[P], center grid.Point[int], widthRadius, heightRadius int, color P) {
	if widthRadius == heightRadius {
		DrawHollowCircle(c, center, widthRadius, color)
		return
	}
	if widthRadius < 0 || heightRadius < 0 {
		return
	}
	midpointEllipse(center, widthRadius, heightRadius, quadPoints(c, color))
}

// DrawFilledEllipse draws a filled axis-aligned ellipse onto c.
// Ellipses with equal radii are drawn as circles.
// Nothing is drawn if one of the radii is negative.
func DrawFilledEllipse[P any](c Canvas[P], center grid.Point[int], widthRadius, heightRadius int, color P) {
	if widthRadius == heightRadius {
		DrawFilledCircle(c, center, widthRadius, color)
		return
	}
	if widthRadius < 0 || heightRadius < 0 {
		return
	}
	midpointEllipse(center, widthRadius, heightRadius, quadSpans(c, color))
}

// DrawHollowCircle draws the outline of a circle onto c.
func DrawHollowCircle[P any](c Canvas[P], center grid.Point[int], radius int, color P) {
	midpointCircle(center, radius, octantPoints(c, color))
}

// DrawFilledCircle draws a filled circle onto c.
// A circle of radius 0 covers only the centre pixel.
func DrawFilledCircle[P any](c Canvas[P], center grid.Point[int], radius int, color P) {
	midpointCircle(center, radius, octantSpans(c, color))
}

// HollowEllipse returns a copy of img with the outline of an ellipse drawn
// onto it.
func HollowEllipse[P pixel.Pixel[P]](img *pixel.Image[P], center grid.Point[int], widthRadius, heightRadius int, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawHollowEllipse[P](out, center, widthRadius, heightRadius, color)
	return out
}

// FilledEllipse returns a copy of img with a filled ellipse drawn onto it.
func FilledEllipse[P pixel.Pixel[P]](img *pixel.Image[P], center grid.Point[int], widthRadius, heightRadius int, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawFilledEllipse[P](out, center, widthRadius, heightRadius, color)
	return out
}

// HollowCircle returns a copy of img with the outline of a circle drawn
// onto it.
func HollowCircle[P pixel.Pixel[P]](img *pixel.Image[P], center grid.Point[int], radius int, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawHollowCircle[P](out, center, radius, color)
	return out
}

// FilledCircle returns a copy of img with a filled circle drawn onto it.
func FilledCircle[P pixel.Pixel[P]](img *pixel.Image[P], center grid.Point[int], radius int, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawFilledCircle[P](out, center, radius, color)
	return out
}
