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

package shade

import "log/slog"

// verticesPerPrimitive is the only supported primitive size.
const verticesPerPrimitive = 3

// Property describes the vertex layout used by a [Rasterizer].
// The zero value describes triangles without any attributes.
type Property struct {
	inputSize   int
	outputSize  int
	vertexCount int
}

// NewProperty returns the layout for vertices with in input attributes,
// of which the vertex shader produces out interpolated attributes.
//
// Invalid values are not fatal: negative sizes are replaced by 0 and any
// vertex count other than 3 is replaced by 3.  Each correction is logged
// as a warning.
func NewProperty(in, out, count int) Property {
	if in < 0 || out < 0 {
		Logger().Warn("invalid vertex attribute count, clamping to 0",
			slog.Int("input", in), slog.Int("output", out))
		in = max(in, 0)
		out = max(out, 0)
	}
	if count != verticesPerPrimitive {
		Logger().Warn("only triangles are supported",
			slog.Int("vertices", count))
		count = verticesPerPrimitive
	}
	return Property{
		inputSize:   in,
		outputSize:  out,
		vertexCount: count,
	}
}

// InputSize is the number of attributes of each vertex passed to Render.
func (p Property) InputSize() int { return p.inputSize }

// OutputSize is the number of attributes produced by the vertex shader and
// interpolated across the triangle.
func (p Property) OutputSize() int { return p.outputSize }

// VertexCount is the number of vertices per primitive.  It is always 3.
func (p Property) VertexCount() int {
	if p.vertexCount == 0 {
		return verticesPerPrimitive
	}
	return p.vertexCount
}
