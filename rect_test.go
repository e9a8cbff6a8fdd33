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
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"seehuhn.de/go/scan/grid"
	"seehuhn.de/go/scan/pixel"
)

func TestHollowRect(t *testing.T) {
	img := newGray(10, 10)
	r := grid.At(2, 3).OfSize(5, 4)
	DrawHollowRect(img, r, on)

	var want []grid.Point[int]
	for y := 3; y <= 6; y++ {
		for x := 2; x <= 6; x++ {
			if x == 2 || x == 6 || y == 3 || y == 6 {
				want = append(want, grid.Pt(x, y))
			}
		}
	}
	if d := gocmp.Diff(want, litPixels(img)); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

func TestHollowRectSinglePixel(t *testing.T) {
	img := newGray(4, 4)
	DrawHollowRect(img, grid.At(1, 2).OfSize(1, 1), on)
	if d := gocmp.Diff([]grid.Point[int]{{X: 1, Y: 2}}, litPixels(img)); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

func TestFilledRect(t *testing.T) {
	type testCase struct {
		name string
		r    grid.Rect
		want int
	}
	cases := []testCase{
		{"inside", grid.At(1, 1).OfSize(3, 2), 6},
		{"whole canvas", grid.At(0, 0).OfSize(10, 8), 80},
		{"top left", grid.At(-2, -2).OfSize(5, 5), 9},
		{"bottom right", grid.At(8, 6).OfSize(10, 10), 4},
		{"covering", grid.At(-100, -100).OfSize(300, 300), 80},
		{"left of canvas", grid.At(-5, 0).OfSize(5, 5), 0},
		{"below canvas", grid.At(0, 8).OfSize(3, 3), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCountingCanvas(10, 8)
			DrawFilledRect[pixel.Gray[uint8]](c, tc.r, on)
			if len(c.writes) != tc.want {
				t.Errorf("%d pixels written, want %d", len(c.writes), tc.want)
			}
			for p, n := range c.writes {
				if n != 1 {
					t.Errorf("pixel %v written %d times", p, n)
				}
				if !tc.r.Contains(p.X, p.Y) {
					t.Errorf("pixel %v outside %v", p, tc.r)
				}
			}
		})
	}
}

func TestFilledRectEmptyCanvas(t *testing.T) {
	c := newCountingCanvas(0, 3)
	DrawFilledRect[pixel.Gray[uint8]](c, grid.At(0, 0).OfSize(2, 2), on)
	if len(c.writes) != 0 {
		t.Errorf("%d pixels written", len(c.writes))
	}
}

func TestRectOutlineInsideFill(t *testing.T) {
	r := grid.At(-3, 4).OfSize(9, 12)
	src := newGray(12, 12)
	hollow := HollowRect(src, r, on)
	filled := FilledRect(src, r, on)

	if len(litPixels(src)) != 0 {
		t.Error("source image was modified")
	}
	for _, p := range litPixels(hollow) {
		if filled.GetPixel(p.X, p.Y) != on {
			t.Errorf("outline pixel %v is not filled", p)
		}
	}
	if len(litPixels(hollow)) >= len(litPixels(filled)) {
		t.Error("outline is not thinner than the fill")
	}
}

func TestCross(t *testing.T) {
	img := newGray(5, 5)
	DrawCross(img, grid.Pt(2, 2), on)
	want := []grid.Point[int]{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}}
	if d := gocmp.Diff(want, litPixels(img)); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
}

func TestCrossAtEdges(t *testing.T) {
	type testCase struct {
		center grid.Point[int]
		want   []grid.Point[int]
	}
	cases := []testCase{
		{grid.Pt(0, 0), []grid.Point[int]{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		{grid.Pt(4, 4), []grid.Point[int]{{X: 4, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}}},
		{grid.Pt(-1, 2), []grid.Point[int]{{X: 0, Y: 2}}},
		{grid.Pt(2, 5), []grid.Point[int]{{X: 2, Y: 4}}},
		{grid.Pt(7, 7), nil},
	}
	for _, tc := range cases {
		img := newGray(5, 5)
		DrawCross(img, tc.center, on)
		if d := gocmp.Diff(tc.want, litPixels(img)); d != "" {
			t.Errorf("center %v: unexpected pixels (-want +got):\n%s", tc.center, d)
		}
	}
}

func TestCrossCopies(t *testing.T) {
	src := newGray(3, 3)
	out := Cross(src, grid.Pt(1, 1), on)
	if len(litPixels(src)) != 0 {
		t.Error("source image was modified")
	}
	if n := len(litPixels(out)); n != 5 {
		t.Errorf("got %d pixels, want 5", n)
	}
}
