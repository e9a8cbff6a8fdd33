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

package testcases

var conicCases = []TestCase{
	{
		Name:   "circle_hollow",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Circle{Center: ip(32, 32), Radius: 25}},
	},
	{
		Name:   "circle_filled",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Circle{Center: ip(32, 32), Radius: 25, Filled: true}},
	},
	{
		Name:   "circle_small",
		Width:  16,
		Height: 16,
		Ops: []Operation{
			Circle{Center: ip(4, 4), Radius: 0, Filled: true},
			Circle{Center: ip(11, 4), Radius: 1},
			Circle{Center: ip(4, 11), Radius: 2},
			Circle{Center: ip(11, 11), Radius: 3, Filled: true},
		},
	},
	{
		Name:   "circle_clipped",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Circle{Center: ip(0, 0), Radius: 30, Filled: true},
			Circle{Center: ip(63, 63), Radius: 30},
		},
	},
	{
		Name:   "ellipse_wide",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Ellipse{Center: ip(32, 32), WidthRadius: 28, HeightRadius: 12}},
	},
	{
		Name:   "ellipse_tall",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Ellipse{Center: ip(32, 32), WidthRadius: 10, HeightRadius: 28}},
	},
	{
		Name:   "ellipse_filled",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Ellipse{Center: ip(32, 32), WidthRadius: 28, HeightRadius: 18, Filled: true}},
	},
	{
		Name:   "ellipse_flat",
		Width:  64,
		Height: 16,
		Ops: []Operation{
			Ellipse{Center: ip(16, 8), WidthRadius: 12, HeightRadius: 1},
			Ellipse{Center: ip(48, 8), WidthRadius: 1, HeightRadius: 6, Filled: true},
		},
	},
	{
		Name:   "ellipse_concentric",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Ellipse{Center: ip(32, 32), WidthRadius: 30, HeightRadius: 20},
			Ellipse{Center: ip(32, 32), WidthRadius: 20, HeightRadius: 30},
			Ellipse{Center: ip(32, 32), WidthRadius: 15, HeightRadius: 15},
		},
	},
}
