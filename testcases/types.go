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

// Package testcases contains a catalogue of small scenes, used for
// reference image tests and for visual comparison with a PDF renderer.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scan/grid"
)

// TestCase defines a single scene.
// The operations are drawn in order, in white on a black canvas.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Ops    []Operation
}

// Operation is one drawing call.
type Operation interface {
	isOperation()
}

// Line is drawn using the Bresenham line rasterizer.
type Line struct {
	Start, End vec.Vec2
}

// AntialiasedLine is drawn using Wu's algorithm.
type AntialiasedLine struct {
	Start, End grid.Point[int]
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center       grid.Point[int]
	WidthRadius  int
	HeightRadius int
	Filled       bool
}

// Circle is a circle with integer centre and radius.
type Circle struct {
	Center grid.Point[int]
	Radius int
	Filled bool
}

// Bezier is a cubic Bézier curve.
type Bezier struct {
	Start, End         vec.Vec2
	ControlA, ControlB vec.Vec2
}

// Rect is a rectangle, either outlined or filled.
type Rect struct {
	Rect   grid.Rect
	Filled bool
}

// Cross is a 3x3 plus-shaped marker.
type Cross struct {
	Center grid.Point[int]
}

// Stroke draws the outline of a path with one pixel wide lines.
type Stroke struct {
	Path path.Path
	CTM  matrix.Matrix // zero-value means no transform
}

func (Line) isOperation()            {}
func (AntialiasedLine) isOperation() {}
func (Ellipse) isOperation()         {}
func (Circle) isOperation()          {}
func (Bezier) isOperation()          {}
func (Rect) isOperation()            {}
func (Cross) isOperation()           {}
func (Stroke) isOperation()          {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ip is a helper to create an integer grid point.
func ip(x, y int) grid.Point[int] {
	return grid.Point[int]{X: x, Y: y}
}

// rect is a helper to create a grid.Rect.
func rect(left, top, width, height int) grid.Rect {
	return grid.At(left, top).OfSize(width, height)
}
