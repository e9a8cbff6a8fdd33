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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var pathCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: triangle(10, 50, 32, 10, 54, 50)}},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: fivePointStar(32, 32, 25)}},
	},
	{
		Name:   "corner",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: corner(10, 50, 32, 14, 54, 50)}},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: circle(32, 32, 25).Iter()}},
	},
	{
		Name:   "quadratic",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: quadraticCurveOpen(10, 50, 32, 10, 54, 50).Iter()}},
	},
	{
		Name:   "s_curve",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: sCurveQuadratic(10, 32, 54, 32).Iter()}},
	},
	{
		Name:   "pie",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: arc(32, 32, 25, 3).Iter()}},
	},
	{
		Name:   "spiral",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Stroke{Path: spiralPath(32, 32, 2, 28, 3)}},
	},
}

var transformCases = []TestCase{
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		Ops: []Operation{Stroke{
			Path: rectangle(0, 0, 20, 20),
			CTM:  matrix.Scale(2, 2).Translate(24, 24),
		}},
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: rectangle(0, 0, 80, 80),
			CTM:  matrix.Scale(0.5, 0.5).Translate(12, 12),
		}},
	},
	{
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: rectangle(-10, -10, 10, 10),
			CTM:  matrix.RotateDeg(45).Translate(32, 32),
		}},
	},
	{
		Name:   "rotate_5deg",
		Width:  64,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: rectangle(-20, -10, 20, 10),
			CTM:  matrix.RotateDeg(5).Translate(32, 32),
		}},
	},
	{
		Name:   "circle_to_ellipse",
		Width:  128,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: circle(0, 0, 15).Iter(),
			CTM:  matrix.Scale(2, 1).Translate(64, 32),
		}},
	},
	{
		Name:   "shear_horizontal",
		Width:  64,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: rectangle(-15, -15, 15, 15),
			CTM:  matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
		}},
	},
	{
		Name:   "shear_and_rotate",
		Width:  64,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: rectangle(-12, -12, 12, 12),
			CTM:  matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
		}},
	},
	{
		Name:   "corner_rotated",
		Width:  64,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: cornerCentered(0, 0, math.Pi/3),
			CTM:  matrix.RotateDeg(30).Translate(32, 32),
		}},
	},
	{
		Name:   "line_scaled",
		Width:  128,
		Height: 64,
		Ops: []Operation{Stroke{
			Path: horizontalLine(-20, 0, 20),
			CTM:  matrix.Scale(2, 1).Translate(64, 32),
		}},
	},
}

// cornerCentered creates a corner path at (cx, cy) with the given opening
// angle.
func cornerCentered(cx, cy float64, angle float64) path.Path {
	length := 20.0
	halfAngle := angle / 2
	return func(yield func(path.Command, []vec.Vec2) bool) {
		x1 := cx - length*math.Cos(halfAngle)
		y1 := cy - length*math.Sin(halfAngle)
		x2 := cx + length*math.Cos(halfAngle)
		y2 := cy - length*math.Sin(halfAngle)

		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{pt(cx, cy)}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{pt(x2, y2)})
	}
}

// spiralPath builds an Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+rMin, cy)}) {
			return
		}
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			angle := t * totalAngle
			r := rMin + rGrowth*angle
			if !yield(path.CmdLineTo, []vec.Vec2{pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))}) {
				return
			}
		}
	}
}
