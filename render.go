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

// Package scan draws lines, Bézier curves, circles, ellipses, rectangles
// and markers onto pixel surfaces, using classical scan conversion
// algorithms.
//
// All drawing functions work through the [Canvas] interface, so any pixel
// buffer which can report its size and read and write single pixels can be
// used as a target.  Parts of a shape which fall outside the canvas are
// silently skipped.  For every DrawXxx function there is a corresponding
// Xxx function which leaves its input image unchanged and returns a
// modified copy.
package scan

//go:generate go run ./testcases/export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/scan/pixel"
	"seehuhn.de/go/scan/testcases"
)

// RenderExample draws a test case onto img, in white.
// The image is expected to have the size given in the test case and is
// normally black before the call.
func RenderExample(tc testcases.TestCase, img *pixel.Image[pixel.Gray[uint8]]) {
	white := pixel.White[pixel.Gray[uint8]]()
	var c Canvas[pixel.Gray[uint8]] = img

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			DrawLineSegment(c, op.Start, op.End, white)
		case testcases.AntialiasedLine:
			DrawAntialiasedLineSegment(c, op.Start, op.End, white, nil)
		case testcases.Ellipse:
			if op.Filled {
				DrawFilledEllipse(c, op.Center, op.WidthRadius, op.HeightRadius, white)
			} else {
				DrawHollowEllipse(c, op.Center, op.WidthRadius, op.HeightRadius, white)
			}
		case testcases.Circle:
			if op.Filled {
				DrawFilledCircle(c, op.Center, op.Radius, white)
			} else {
				DrawHollowCircle(c, op.Center, op.Radius, white)
			}
		case testcases.Bezier:
			DrawCubicBezierCurve(c, op.Start, op.End, op.ControlA, op.ControlB, white)
		case testcases.Rect:
			if op.Filled {
				DrawFilledRect(c, op.Rect, white)
			} else {
				DrawHollowRect(c, op.Rect, white)
			}
		case testcases.Cross:
			DrawCross(c, op.Center, white)
		case testcases.Stroke:
			ctm := op.CTM
			if ctm == (matrix.Matrix{}) {
				ctm = matrix.Identity
			}
			DrawPath(c, op.Path, ctm, white)
		default:
			panic(fmt.Sprintf("scan: unknown operation %T in test case %q", op, tc.Name))
		}
	}
}
