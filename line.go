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
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scan/pixel"
)

// Bresenham walks the pixels of a line segment.
//
// The walk always proceeds along the axis of greater extent, one pixel per
// step, so a line between integer endpoints visits
// max(|Δx|, |Δy|) + 1 pixels and consecutive pixels are 8-connected.
// Endpoint coordinates are truncated towards zero.
type Bresenham struct {
	start lineState
	cur   lineState

	dx, dy float64
	endX   int
	yStep  int
	steep  bool
}

type lineState struct {
	x, y int
	err  float64
}

// NewBresenham returns a walk from start to end.
func NewBresenham(start, end vec.Vec2) *Bresenham {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	yStep := -1
	if y0 < y1 {
		yStep = 1
	}

	b := &Bresenham{
		start: lineState{
			x:   int(x0),
			y:   int(y0),
			err: dx / 2,
		},
		dx:    dx,
		dy:    math.Abs(y1 - y0),
		endX:  int(x1),
		yStep: yStep,
		steep: steep,
	}
	b.cur = b.start
	return b
}

// Next returns the next pixel of the walk.
// Once the walk is exhausted, ok is false.
func (b *Bresenham) Next() (x, y int, ok bool) {
	return b.step(&b.cur)
}

// Len returns the number of pixels not yet returned by Next.
func (b *Bresenham) Len() int {
	return max(b.endX-b.cur.x+1, 0)
}

// Reset rewinds the walk to its first pixel.
func (b *Bresenham) Reset() {
	b.cur = b.start
}

// All iterates over every pixel of the line, from the start.
// The iteration does not affect the position used by Next, and each
// call to the returned function starts over.
func (b *Bresenham) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		s := b.start
		for {
			x, y, ok := b.step(&s)
			if !ok || !yield(x, y) {
				return
			}
		}
	}
}

func (b *Bresenham) step(s *lineState) (x, y int, ok bool) {
	if s.x > b.endX {
		return 0, 0, false
	}

	x, y = s.x, s.y
	if b.steep {
		x, y = y, x
	}

	s.x++
	s.err -= b.dy
	if s.err < 0 {
		s.y += b.yStep
		s.err += b.dx
	}
	return x, y, true
}

// ClampedLine returns a walk from start to end, where both endpoints have
// first been moved into the canvas area.  All pixels of the walk can be
// passed to GetPixel and DrawPixel without further checks.
//
// Clamping changes the direction of lines which leave the canvas, so the
// pixels visited are not in general the visible part of the unclamped line.
// Use DrawLineSegment to draw the visible part.
//
// ClampedLine panics if the canvas has zero width or height.
func ClampedLine[P any](c Canvas[P], start, end vec.Vec2) *Bresenham {
	width, height := c.Dimensions()
	if width < 1 || height < 1 {
		panic("scan: ClampedLine does not support empty canvases")
	}
	cs := clampPoint(start, width, height)
	ce := clampPoint(end, width, height)
	if cs != start || ce != end {
		logger().Debug("clamped line endpoints",
			"start", start, "end", end, "clampedStart", cs, "clampedEnd", ce)
	}
	return NewBresenham(cs, ce)
}

func clampPoint(v vec.Vec2, width, height int) vec.Vec2 {
	return vec.Vec2{
		X: clampCoord(v.X, width),
		Y: clampCoord(v.Y, height),
	}
}

func clampCoord(x float64, limit int) float64 {
	if x < 0 {
		return 0
	}
	if x >= float64(limit) {
		return float64(limit - 1)
	}
	return x
}

// DrawLineSegment draws the line from start to end onto c.
// Pixels outside the canvas are skipped.
func DrawLineSegment[P any](c Canvas[P], start, end vec.Vec2, color P) {
	width, height := c.Dimensions()
	for x, y := range NewBresenham(start, end).All() {
		if inBounds(x, y, width, height) {
			c.DrawPixel(x, y, color)
		}
	}
}

// LineSegment returns a copy of img with a line from start to end drawn
// onto it.  The source image is not modified.
func LineSegment[P pixel.Pixel[P]](img *pixel.Image[P], start, end vec.Vec2, color P) *pixel.Image[P] {
	out := img.Clone()
	DrawLineSegment[P](out, start, end, color)
	return out
}
