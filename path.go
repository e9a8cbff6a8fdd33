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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DrawPath strokes p onto c with one pixel wide lines.
//
// The points of the path are mapped to canvas coordinates using m.
// Straight segments are drawn with DrawLineSegment, quadratic and cubic
// segments with DrawCubicBezierCurve.  After a Close, drawing continues
// from the start of the closed subpath.  Segments before the first MoveTo
// are ignored.
func DrawPath[P any](c Canvas[P], p path.Path, m matrix.Matrix, color P) {
	var current, subpathStart vec.Vec2
	started := false
	for cmd, pts := range p.Transform(m).ToCubic() {
		if cmd != path.CmdMoveTo && !started {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpathStart = current
			started = true

		case path.CmdLineTo:
			DrawLineSegment(c, current, pts[0], color)
			current = pts[0]

		case path.CmdCubeTo:
			DrawCubicBezierCurve(c, current, pts[2], pts[0], pts[1], color)
			current = pts[2]

		case path.CmdClose:
			if current != subpathStart {
				DrawLineSegment(c, current, subpathStart, color)
			}
			current = subpathStart
		}
	}
}
