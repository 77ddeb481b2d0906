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

var fillCases = []TestCase{
	{
		Name:      "triangle_ccw",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, 0.15, 0.8, 0.85, 0.8, 0.5, 0.15)},
	},
	{
		Name:      "triangle_cw",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, 0.15, 0.8, 0.5, 0.15, 0.85, 0.8)},
	},
	{
		// vertices 0 and 2 on the same scanline
		Name:      "flat_top",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, 0.2, 0.2, 0.5, 0.85, 0.8, 0.2)},
	},
	{
		Name:      "flat_bottom",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, 0.5, 0.1, 0.1, 0.7, 0.9, 0.7)},
	},
	{
		Name:      "sliver",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, 0.05, 0.1, 0.95, 0.3, 0.1, 0.2)},
	},
	{
		Name:      "overhang",
		Width:     64,
		Height:    48,
		Triangles: []Triangle{flat(1, 1, -0.4, 0.3, 1.3, -0.2, 0.6, 1.5)},
	},
	{
		Name:      "wide",
		Width:     128,
		Height:    32,
		Triangles: []Triangle{flat(1, 1, 0.02, 0.9, 0.98, 0.6, 0.3, 0.05)},
	},
}
