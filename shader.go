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

import "image/color"

// Triangle holds the input attributes of the three vertices of a triangle.
// Each vertex must have exactly [Property.InputSize] attributes.
type Triangle [3][]float32

// Position is the screen position of a vertex, as computed by a
// [VertexShader].  X and Y are normalized, so that (0, 0) is the top-left
// corner of the color buffer and (1, 1) the bottom-right corner.  Z is the
// depth; larger values are nearer to the viewer.
type Position struct {
	X, Y, Z float64
}

// VertexShader transforms the input attributes of one vertex.
// It must set all of out, which has [Property.OutputSize] elements, and
// return the screen position of the vertex.  The slice out is owned by the
// rasterizer and must not be retained.
type VertexShader func(in, out []float32) Position

// FragmentShader computes the color of one covered pixel from the
// interpolated vertex shader outputs.  If ok is false, the fragment is
// discarded and neither the color buffer nor the depth buffer is changed.
// The slice attr is only valid for the duration of the call.
type FragmentShader func(attr []float32) (c color.RGBA, ok bool)
