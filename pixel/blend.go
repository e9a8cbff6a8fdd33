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

package pixel

// WeightedSum returns left*leftWeight + right*rightWeight, computed
// channel by channel and saturated into the channel type.
func WeightedSum[P Pixel[P]](left, right P, leftWeight, rightWeight float32) P {
	return left.Combine(right, func(l, r float32) float32 {
		return l*leftWeight + r*rightWeight
	})
}

// Interpolate blends left and right, giving weight leftWeight to left
// and 1-leftWeight to right.
//
// Interpolate has the signature expected for the blend argument of the
// antialiased line drawing functions.
func Interpolate[P Pixel[P]](left, right P, leftWeight float32) P {
	return WeightedSum(left, right, leftWeight, 1-leftWeight)
}
