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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scan/pixel"
)

// DrawCubicBezierCurve draws a cubic Bézier curve onto c.
//
// The curve is approximated by straight line segments between points on
// the curve, rounded to the nearest pixel.  The number of segments grows
// with the length of the control polygon, and is at least 3.  If both
// control points lie on the segment from start to end, the result is the
// same as for DrawLineSegment.
func DrawCubicBezierCurve[P any](c Canvas[P], start, end, controlA, controlB vec.Vec2, color P) {
	width, height := c.Dimensions()
	if width <= 0 || height <= 0 {
		return
	}

	// A curve whose control points lie on the chord is a straight line.
	// Joining rounded samples would not reproduce the Bresenham walk.
	if onChord(start, end, controlA) && onChord(start, end, controlB) {
		DrawLineSegment(c, start, end, color)
		return
	}

	// The curve lies inside the convex hull of its control points.
	// Rounding can move samples by up to half a pixel.
	bbox := controlBox(start, controlA, controlB, end)
	canvas := rect.Rect{URx: float64(width), URy: float64(height)}
	if !overlaps(bbox, canvas) {
		return
	}

	n := bezierSegments(start, controlA, controlB, end)
	logger().Debug("flattening cubic Bézier curve", "segments", n)

	dt := 1 / float64(n)
	p0 := cubicPoint(start, controlA, controlB, end, 0)
	for i := range n {
		t := float64(i+1) * dt
		p1 := cubicPoint(start, controlA, controlB, end, t)
		DrawLineSegment(c, p0, p1, color)
		p0 = p1
	}
}

// CubicBezierCurve returns a copy of img with a cubic Bézier curve drawn
// onto it.
func CubicBezierCurve[P pixel.Pixel[P]](img *pixel.Image[P], start, end, controlA, controlB vec.Vec2, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawCubicBezierCurve[P](out, start, end, controlA, controlB, color)
	return out
}

// bezierSegments returns the number of line segments used to approximate
// the curve.  The length of the control polygon is an upper bound for the
// length of the curve.
func bezierSegments(p0, p1, p2, p3 vec.Vec2) int {
	bound := p1.Sub(p0).Length() + p2.Sub(p1).Length() + p3.Sub(p2).Length()
	return int(math.Sqrt(bound*bound+800) / 8)
}

// cubicPoint evaluates the Bernstein form of the curve at t and rounds the
// result to pixel coordinates.
func cubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return vec.Vec2{
		X: math.Round(a*p0.X + b*p1.X + c*p2.X + d*p3.X),
		Y: math.Round(a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y),
	}
}

// onChord reports whether p lies on the segment from a to b, up to
// rounding errors.
func onChord(a, b, p vec.Vec2) bool {
	d := b.Sub(a)
	v := p.Sub(a)
	dd := d.X*d.X + d.Y*d.Y
	if dd == 0 {
		return v.Length() <= chordEps
	}
	tol := chordEps * math.Sqrt(dd)
	cross := d.X*v.Y - d.Y*v.X
	if math.Abs(cross) > tol {
		return false
	}
	dot := d.X*v.X + d.Y*v.Y
	return dot >= -tol && dot <= dd+tol
}

// chordEps is the largest distance, in pixels, at which a control point
// still counts as lying on the chord.
const chordEps = 1e-9

// controlBox returns the bounding box of the given points, grown by one
// pixel on every side.
func controlBox(pts ...vec.Vec2) rect.Rect {
	r := rect.Rect{
		LLx: pts[0].X, LLy: pts[0].Y,
		URx: pts[0].X, URy: pts[0].Y,
	}
	for _, p := range pts[1:] {
		r.Add(p.X, p.Y)
	}
	r.LLx--
	r.LLy--
	r.URx++
	r.URy++
	return r
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}
