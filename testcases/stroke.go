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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(10, 32), End: pt(54, 32)}},
	},
	{
		Name:   "vertical",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(32, 10), End: pt(32, 54)}},
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(0, 0), End: pt(63, 63)}},
	},
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(4, 40), End: pt(60, 24)}},
	},
	{
		Name:   "steep",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(40, 60), End: pt(24, 4)}},
	},
	{
		Name:   "fractional",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(4.7, 10.2), End: pt(58.3, 50.9)}},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{Start: pt(-20, 10), End: pt(90, 70)}},
	},
	{
		Name:   "fan",
		Width:  64,
		Height: 64,
		Ops:    fan(32, 32, 28, 16),
	},
}

var antialiasCases = []TestCase{
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Ops:    []Operation{AntialiasedLine{Start: ip(4, 40), End: ip(60, 24)}},
	},
	{
		Name:   "steep",
		Width:  64,
		Height: 64,
		Ops:    []Operation{AntialiasedLine{Start: ip(40, 60), End: ip(24, 4)}},
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Ops:    []Operation{AntialiasedLine{Start: ip(4, 4), End: ip(59, 59)}},
	},
	{
		Name:   "crossing",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			AntialiasedLine{Start: ip(4, 10), End: ip(60, 54)},
			AntialiasedLine{Start: ip(4, 54), End: ip(60, 10)},
		},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Ops:    []Operation{AntialiasedLine{Start: ip(-30, 5), End: ip(80, 45)}},
	},
}

// fan builds n lines from the centre (cx, cy), evenly spread around a
// full turn.
func fan(cx, cy, r float64, n int) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		ops[i] = Line{
			Start: pt(cx, cy),
			End:   pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)),
		}
	}
	return ops
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y}})
	}
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}
