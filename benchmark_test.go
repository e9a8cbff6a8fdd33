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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkFilledCircle benchmarks the midpoint circle fill.
func BenchmarkFilledCircle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := pixel.New[pixel.Gray[uint8]](size, size)
			white := pixel.White[pixel.Gray[uint8]]()
			center := grid.Pt(size/2, size/2)
			radius := size * 45 / 100

			b.ReportAllocs()
			for b.Loop() {
				DrawFilledCircle(dst, center, radius, white)
			}
		})
	}
}

// BenchmarkVectorCircle benchmarks x/image/vector filling a circle of the
// same size, with antialiasing.
func BenchmarkVectorCircle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			radius := float32(size) * 0.45

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, radius)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeCirclePath benchmarks outlining a circle given as a path,
// which goes through the Bézier flattener.
func BenchmarkStrokeCirclePath(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := pixel.New[pixel.Gray[uint8]](size, size)
			white := pixel.White[pixel.Gray[uint8]]()
			center := float64(size) / 2
			p := circlePath(center, center, float64(size)*0.45)

			b.ReportAllocs()
			for b.Loop() {
				DrawPath(dst, p, matrix.Identity, white)
			}
		})
	}
}

// BenchmarkLine benchmarks long diagonal Bresenham lines.
func BenchmarkLine(b *testing.B) {
	const size = 1000
	dst := pixel.New[pixel.Gray[uint8]](size, size)
	white := pixel.White[pixel.Gray[uint8]]()
	start := vec.Vec2{X: 0, Y: 0}
	end := vec.Vec2{X: size - 1, Y: size / 3}

	b.ReportAllocs()
	for b.Loop() {
		DrawLineSegment(dst, start, end, white)
	}
}

// circlePath returns a circle made from four cubic Bézier curves.
func circlePath(cx, cy, r float64) path.Path {
	const k = 0.5522847498
	kr := k * r
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2

		buf[0] = vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
