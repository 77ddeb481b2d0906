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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:      "rotate",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, -0.5, -0.5, 0.5, -0.5, 0, 0.5)},
		CTM:       matrix.RotateDeg(30).Translate(0.5, 0.5),
	},
	{
		Name:      "scale",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, 0, 0, 1, 0, 0, 1)},
		CTM:       matrix.Scale(0.5, 0.75).Translate(0.25, 0.1),
	},
	{
		Name:      "skew",
		Width:     64,
		Height:    64,
		Triangles: []Triangle{flat(1, 1, -0.3, -0.3, 0.3, -0.3, 0, 0.3)},
		CTM:       matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(0.5, 0.5),
	},
}
