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
	"math"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

// bbox returns the smallest rectangle containing pts.
func bbox(pts []grid.Point[int]) (lo, hi grid.Point[int]) {
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}

// isMirrorSymmetric checks that img is symmetric about the horizontal and
// vertical lines through c.
func isMirrorSymmetric(img *pixel.Image[pixel.Gray[uint8]], c grid.Point[int]) bool {
	for _, p := range litPixels(img) {
		mx, my := 2*c.X-p.X, 2*c.Y-p.Y
		if img.GetPixel(mx, p.Y) != on || img.GetPixel(p.X, my) != on {
			return false
		}
	}
	return true
}

func TestEqualRadiiEllipseIsCircle(t *testing.T) {
	center := grid.Pt(25, 25)
	for r := range 21 {
		a := newGray(51, 51)
		DrawHollowEllipse(a, center, r, r, on)
		b := newGray(51, 51)
		DrawHollowCircle(b, center, r, on)
		if d := gocmp.Diff(litPixels(b), litPixels(a)); d != "" {
			t.Errorf("hollow r=%d: ellipse differs from circle:\n%s", r, d)
		}

		a = newGray(51, 51)
		DrawFilledEllipse(a, center, r, r, on)
		b = newGray(51, 51)
		DrawFilledCircle(b, center, r, on)
		if d := gocmp.Diff(litPixels(b), litPixels(a)); d != "" {
			t.Errorf("filled r=%d: ellipse differs from circle:\n%s", r, d)
		}
	}
}

func TestHollowCircleNearRadius(t *testing.T) {
	center := grid.Pt(40, 40)
	for r := 1; r <= 39; r++ {
		img := newGray(81, 81)
		DrawHollowCircle(img, center, r, on)

		pts := litPixels(img)
		for _, p := range pts {
			d := grid.Distance(p, center)
			if math.Abs(d-float64(r)) > 0.5 {
				t.Errorf("r=%d: pixel %v is at distance %g", r, p, d)
			}
		}
		lo, hi := bbox(pts)
		if lo != grid.Pt(40-r, 40-r) || hi != grid.Pt(40+r, 40+r) {
			t.Errorf("r=%d: bounding box %v-%v", r, lo, hi)
		}
		if !isMirrorSymmetric(img, center) {
			t.Errorf("r=%d: circle is not symmetric", r)
		}
	}
}

func TestFilledCircleRadiusZero(t *testing.T) {
	c := newCountingCanvas(5, 5)
	DrawFilledCircle[pixel.Gray[uint8]](c, grid.Pt(2, 3), 0, on)

	if len(c.writes) != 1 || c.writes[grid.Pt(2, 3)] == 0 {
		t.Errorf("unexpected writes: %v", c.writes)
	}
}

func TestEllipseExtent(t *testing.T) {
	center := grid.Pt(20, 20)
	for a := 2; a <= 15; a++ {
		for b := 2; b <= 15; b++ {
			t.Run(fmt.Sprintf("%dx%d", a, b), func(t *testing.T) {
				hollow := newGray(41, 41)
				DrawHollowEllipse(hollow, center, a, b, on)
				filled := newGray(41, 41)
				DrawFilledEllipse(filled, center, a, b, on)

				wantLo, wantHi := grid.Pt(20-a, 20-b), grid.Pt(20+a, 20+b)
				for name, img := range map[string]*pixel.Image[pixel.Gray[uint8]]{"hollow": hollow, "filled": filled} {
					lo, hi := bbox(litPixels(img))
					if lo != wantLo || hi != wantHi {
						t.Errorf("%s: bounding box %v-%v, want %v-%v", name, lo, hi, wantLo, wantHi)
					}
					if !isMirrorSymmetric(img, center) {
						t.Errorf("%s: not symmetric", name)
					}
				}

				for _, p := range litPixels(hollow) {
					if filled.GetPixel(p.X, p.Y) != on {
						t.Errorf("outline pixel %v is not filled", p)
					}
				}
			})
		}
	}
}

// TestFilledEllipseRowsAreIntervals checks that every row of a filled
// ellipse is a single run of pixels.
func TestFilledEllipseRowsAreIntervals(t *testing.T) {
	img := newGray(41, 41)
	DrawFilledEllipse(img, grid.Pt(20, 20), 17, 6, on)
	DrawFilledCircle(img, grid.Pt(20, 20), 4, on)

	for y := range img.Height {
		runs := 0
		prev := false
		for x := range img.Width {
			cur := img.GetPixel(x, y) == on
			if cur && !prev {
				runs++
			}
			prev = cur
		}
		if runs > 1 {
			t.Errorf("row %d has %d runs", y, runs)
		}
	}
}

func TestNegativeRadii(t *testing.T) {
	c := newCountingCanvas(20, 20)
	center := grid.Pt(10, 10)
	DrawHollowEllipse[pixel.Gray[uint8]](c, center, -3, 5, on)
	DrawHollowEllipse[pixel.Gray[uint8]](c, center, 3, -5, on)
	DrawFilledEllipse[pixel.Gray[uint8]](c, center, -3, 5, on)
	DrawFilledEllipse[pixel.Gray[uint8]](c, center, -2, -2, on)
	DrawHollowCircle[pixel.Gray[uint8]](c, center, -1, on)
	DrawFilledCircle[pixel.Gray[uint8]](c, center, -4, on)

	if len(c.writes) != 0 {
		t.Errorf("negative radii produced %d writes", len(c.writes))
	}
}

func TestConicsClip(t *testing.T) {
	img := newGray(16, 12)
	for _, center := range []grid.Point[int]{{X: 0, Y: 0}, {X: 15, Y: 11}, {X: -5, Y: 6}, {X: 8, Y: 30}} {
		DrawHollowCircle(img, center, 9, on)
		DrawFilledCircle(img, center, 7, on)
		DrawHollowEllipse(img, center, 12, 5, on)
		DrawFilledEllipse(img, center, 3, 10, on)
	}
	if len(litPixels(img)) == 0 {
		t.Error("nothing was drawn")
	}
}

func TestConicValueVariants(t *testing.T) {
	src := newGray(21, 21)
	center := grid.Pt(10, 10)

	outs := []*pixel.Image[pixel.Gray[uint8]]{
		HollowEllipse(src, center, 8, 4, on),
		FilledEllipse(src, center, 8, 4, on),
		HollowCircle(src, center, 6, on),
		FilledCircle(src, center, 6, on),
	}
	if len(litPixels(src)) != 0 {
		t.Error("source image was modified")
	}
	for i, out := range outs {
		if len(litPixels(out)) == 0 {
			t.Errorf("result %d is empty", i)
		}
	}
}
