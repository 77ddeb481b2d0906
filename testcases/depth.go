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

import "seehuhn.de/go/geom/vec"

var depthCases = []TestCase{
	{
		Name:   "stacked",
		Width:  64,
		Height: 64,
		Triangles: []Triangle{
			flat(0.5, 0.5, 0.1, 0.1, 0.9, 0.1, 0.1, 0.9),
			flat(1, 0.9, 0.3, 0.3, 0.95, 0.4, 0.4, 0.95),
			flat(0.25, 0.2, 0.05, 0.5, 0.6, 0.05, 0.95, 0.95),
		},
	},
	{
		// two triangles which intersect in depth
		Name:   "crossing",
		Width:  64,
		Height: 64,
		Triangles: []Triangle{
			{
				Vertices: [3]vec.Vec2{pt(0.1, 0.2), pt(0.9, 0.2), pt(0.5, 0.8)},
				Depth:    [3]float64{0.2, 0.8, 0.5},
				Gray:     1,
			},
			{
				Vertices: [3]vec.Vec2{pt(0.1, 0.8), pt(0.5, 0.1), pt(0.9, 0.8)},
				Depth:    [3]float64{0.8, 0.5, 0.2},
				Gray:     0.5,
			},
		},
	},
}
