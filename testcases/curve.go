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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "arch",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(10, 50, 20, 10, 44, 10, 54, 50)},
	},
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(10, 32, 22, 28, 42, 28, 54, 32)}, // control points near chord
	},
	{
		Name:   "s_shape",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(10, 32, 32, 0, 32, 64, 54, 32)},
	},
	{
		Name:   "loop",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(10, 40, 70, 0, -6, 0, 54, 40)},
	},
	{
		Name:   "cusp",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(10, 50, 54, 10, 10, 10, 54, 50)},
	},
	{
		Name:   "degenerate",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(10, 32, 20, 32, 40, 32, 54, 32)}, // control points on the chord
	},
	{
		Name:   "tiny",
		Width:  16,
		Height: 16,
		Ops:    []Operation{cubic(4, 10, 5, 4, 9, 4, 11, 10)},
	},
	{
		Name:   "partly_outside",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(-20, 60, 10, -40, 60, 100, 90, 10)},
	},
	{
		Name:   "outside",
		Width:  64,
		Height: 64,
		Ops:    []Operation{cubic(70, 70, 80, 60, 100, 90, 120, 70)},
	},
}

// cubic builds a Bezier operation from start, the two control points and
// the end point.
func cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) Bezier {
	return Bezier{
		Start:    pt(x1, y1),
		ControlA: pt(c1x, c1y),
		ControlB: pt(c2x, c2y),
		End:      pt(x2, y2),
	}
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// arc builds a pie slice covering the given number of quarter turns,
// starting from the right and running counter-clockwise on screen.
func arc(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	if quadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if quadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if quadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	if quadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}
	return p.Close()
}
