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

// Package grid provides the geometric value types used by the scan
// converters: generic points, integer rectangles and implicit lines.
package grid

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/geom/vec"
)

// Number is the set of coordinate types a Point can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a 2D coordinate.
type Point[T Number] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the component-wise sum p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// F64 converts p to float64 coordinates.
func (p Point[T]) F64() Point[float64] {
	return Point[float64]{X: float64(p.X), Y: float64(p.Y)}
}

// I32 converts p to int32 coordinates. Fractional parts are truncated
// towards zero. I32 panics if a coordinate is NaN or does not fit into
// an int32.
func (p Point[T]) I32() Point[int32] {
	return Point[int32]{X: toInt32(p.X), Y: toInt32(p.Y)}
}

// Vec converts p to a vec.Vec2.
func (p Point[T]) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// FromVec converts v to a float64 point.
func FromVec(v vec.Vec2) Point[float64] {
	return Point[float64]{X: v.X, Y: v.Y}
}

// Distance returns the Euclidean distance between p and q.
func Distance[T Number](p, q Point[T]) float64 {
	return math.Sqrt(DistanceSq(p, q))
}

// DistanceSq returns the squared Euclidean distance between p and q.
// The computation is carried out in float64, so that unsigned and
// narrow integer coordinates cannot overflow.
func DistanceSq[T Number](p, q Point[T]) float64 {
	a, b := p.F64(), q.F64()
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func toInt32[T Number](x T) int32 {
	f := float64(x)
	if math.IsNaN(f) || f <= math.MinInt32-1 || f >= math.MaxInt32+1 {
		panic(fmt.Sprintf("grid: coordinate %v does not fit into an int32", x))
	}
	return int32(x)
}
