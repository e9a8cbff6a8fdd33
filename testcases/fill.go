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

var rectCases = []TestCase{
	{
		Name:   "hollow",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Rect{Rect: rect(10, 10, 44, 30)}},
	},
	{
		Name:   "filled",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Rect{Rect: rect(10, 10, 44, 30), Filled: true}},
	},
	{
		Name:   "single_pixel",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Rect{Rect: rect(3, 3, 1, 1)},
			Rect{Rect: rect(12, 12, 1, 1), Filled: true},
		},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Rect{Rect: rect(-10, -10, 30, 30), Filled: true},
			Rect{Rect: rect(40, 40, 40, 40)},
		},
	},
	{
		Name:   "outside",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Rect{Rect: rect(64, 0, 10, 10), Filled: true},
			Rect{Rect: rect(-20, -20, 10, 10), Filled: true},
		},
	},
	{
		Name:   "nested",
		Width:  64,
		Height: 64,
		Ops:    nestedRects(32, 32, 4, 7),
	},
}

var markerCases = []TestCase{
	{
		Name:   "grid",
		Width:  64,
		Height: 64,
		Ops:    crossGrid(8, 8, 8),
	},
	{
		Name:   "edges",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Cross{Center: ip(0, 0)},
			Cross{Center: ip(15, 0)},
			Cross{Center: ip(0, 15)},
			Cross{Center: ip(15, 15)},
			Cross{Center: ip(8, -1)},
			Cross{Center: ip(16, 8)},
		},
	},
}

// nestedRects builds n concentric square outlines around (cx, cy),
// spaced step pixels apart.
func nestedRects(cx, cy, step, n int) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		d := (i + 1) * step
		ops[i] = Rect{Rect: rect(cx-d, cy-d, 2*d+1, 2*d+1)}
	}
	return ops
}

// crossGrid builds a rows x cols grid of markers spaced by gap pixels.
func crossGrid(rows, cols, gap int) []Operation {
	ops := make([]Operation, 0, rows*cols)
	for i := range rows {
		for j := range cols {
			ops = append(ops, Cross{Center: ip(gap/2+j*gap, gap/2+i*gap)})
		}
	}
	return ops
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y2}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}
