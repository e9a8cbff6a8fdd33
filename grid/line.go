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

package grid

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// LineEq is the implicit equation A*x + B*y + C = 0 of a straight line.
type LineEq struct {
	A, B, C float64
}

// LineThrough returns the line through p and q.
// If p == q, all coefficients are zero.
func LineThrough(p, q vec.Vec2) LineEq {
	return LineEq{
		A: p.Y - q.Y,
		B: q.X - p.X,
		C: p.X*q.Y - q.X*p.Y,
	}
}

// Distance returns the distance of v from the line.
// The result is NaN for a degenerate line.
func (l LineEq) Distance(v vec.Vec2) float64 {
	return math.Abs(l.A*v.X+l.B*v.Y+l.C) / math.Hypot(l.A, l.B)
}
