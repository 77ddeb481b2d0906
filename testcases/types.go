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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name      string        // lowercase a-z and _ only
	Width     int           // canvas width in pixels
	Height    int           // canvas height in pixels
	Triangles []Triangle    // drawn in order
	CTM       matrix.Matrix // maps vertices to normalized screen coordinates (zero-value means no transform)
}

// Triangle is a flat-shaded triangle with per-vertex depth.
type Triangle struct {
	Vertices [3]vec.Vec2 // user space, before CTM
	Depth    [3]float64  // larger is nearer, in (0, 1]
	Gray     float64     // fill intensity in [0, 1]
}

// Matrix returns the CTM of the test case, with the zero value replaced by
// the identity.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Vertex returns vertex i in the layout [x, y, z, gray].
func (t Triangle) Vertex(i int) []float32 {
	return []float32{
		float32(t.Vertices[i].X),
		float32(t.Vertices[i].Y),
		float32(t.Depth[i]),
		float32(t.Gray),
	}
}

// MeanDepth returns the average of the vertex depths.
func (t Triangle) MeanDepth() float64 {
	return (t.Depth[0] + t.Depth[1] + t.Depth[2]) / 3
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// flat returns a triangle with constant depth.
func flat(gray, depth float64, x0, y0, x1, y1, x2, y2 float64) Triangle {
	return Triangle{
		Vertices: [3]vec.Vec2{pt(x0, y0), pt(x1, y1), pt(x2, y2)},
		Depth:    [3]float64{depth, depth, depth},
		Gray:     gray,
	}
}
