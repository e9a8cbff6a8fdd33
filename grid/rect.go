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
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Region is implemented by shapes which can test whether a point lies
// inside them.
type Region[T any] interface {
	Contains(x, y T) bool
}

// Rect is an axis-aligned rectangle of pixels.
// Width and height are always strictly positive.
//
// Rectangles are built with At and Position.OfSize:
//
//	r := grid.At(3, 3).OfSize(5, 5)
type Rect struct {
	left, top     int
	width, height int
}

// Position is the top-left corner of a rectangle whose size is not yet
// known.
type Position struct {
	left, top int
}

// At starts the construction of a rectangle with top-left corner (x, y).
func At(x, y int) Position {
	return Position{left: x, top: y}
}

// OfSize completes the rectangle. It panics if width or height is not
// strictly positive.
func (p Position) OfSize(width, height int) Rect {
	if width <= 0 {
		panic("grid: width must be strictly positive")
	}
	if height <= 0 {
		panic("grid: height must be strictly positive")
	}
	return Rect{
		left:   p.left,
		top:    p.top,
		width:  width,
		height: height,
	}
}

// Left returns the x coordinate of the leftmost column.
func (r Rect) Left() int { return r.left }

// Top returns the y coordinate of the topmost row.
func (r Rect) Top() int { return r.top }

// Right returns the x coordinate of the rightmost column.
// The column is part of the rectangle.
func (r Rect) Right() int { return r.left + r.width - 1 }

// Bottom returns the y coordinate of the bottom row.
// The row is part of the rectangle.
func (r Rect) Bottom() int { return r.top + r.height - 1 }

// Width returns the number of columns.
func (r Rect) Width() int { return r.width }

// Height returns the number of rows.
func (r Rect) Height() int { return r.height }

// Intersect returns the overlap of r and other. The second return value
// is false if the two rectangles share no pixel.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	left := max(r.left, other.left)
	top := max(r.top, other.top)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right < left || bottom < top {
		return Rect{}, false
	}

	return Rect{
		left:   left,
		top:    top,
		width:  right - left + 1,
		height: bottom - top + 1,
	}, true
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.left <= x && x <= r.Right() && r.top <= y && y <= r.Bottom()
}

// ContainsVec reports whether v lies inside r, where r is taken to span
// the closed interval from Left to Right and from Top to Bottom.
func (r Rect) ContainsVec(v vec.Vec2) bool {
	return float64(r.left) <= v.X && v.X <= float64(r.Right()) &&
		float64(r.top) <= v.Y && v.Y <= float64(r.Bottom())
}

// Real returns r as a region over float64 coordinates.
func (r Rect) Real() Region[float64] {
	return realRect{r}
}

// Bounds returns the area covered by the pixels of r.
// Pixel (x, y) covers the unit square [x, x+1] × [y, y+1].
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: float64(r.left),
		LLy: float64(r.top),
		URx: float64(r.left + r.width),
		URy: float64(r.top + r.height),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.width, r.height, r.left, r.top)
}

type realRect struct {
	r Rect
}

func (rr realRect) Contains(x, y float64) bool {
	return rr.r.ContainsVec(vec.Vec2{X: x, Y: y})
}
