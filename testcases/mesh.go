// seehuhn.de/go/shade - a software triangle shader
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

import "math"

var meshCases = []TestCase{
	{
		Name:   "quad",
		Width:  64,
		Height: 64,
		Triangles: []Triangle{
			flat(1, 1, 0.2, 0.2, 0.8, 0.25, 0.75, 0.8),
			flat(1, 1, 0.2, 0.2, 0.75, 0.8, 0.25, 0.75),
		},
	},
	{
		Name:      "fan",
		Width:     64,
		Height:    64,
		Triangles: fan(0.5, 0.5, 0.4, 7),
	},
}

// fan builds a regular polygon with n corners from triangles which share
// the center vertex.
func fan(cx, cy, r float64, n int) []Triangle {
	res := make([]Triangle, n)
	for i := range n {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		res[i] = flat(1, 1,
			cx, cy,
			cx+r*math.Cos(a0), cy+r*math.Sin(a0),
			cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	}
	return res
}
