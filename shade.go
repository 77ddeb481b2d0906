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

// Package shade implements a software triangle rasterizer with a
// programmable vertex and fragment stage, a depth buffer and
// power-of-two texture sampling (see the texture sub-package).
//
// A [Rasterizer] owns a color buffer and a depth buffer.  Each call to
// [Rasterizer.Render] runs the vertex shader on the three vertices of a
// triangle, visits every pixel of the triangle's bounding box, interpolates
// the vertex shader outputs over the covered pixels and passes them to the
// fragment shader.  Buffers are only cleared on request, so a frame is
// usually drawn as
//
//	r.Clear(background)
//	for _, tri := range triangles {
//		if err := r.Render(tri); err != nil {
//			return err
//		}
//	}
//	present(r.Image())
//
// Depth values follow a greater-is-nearer convention: a fragment is kept
// if its depth is strictly greater than the stored value, and clearing
// resets the depth buffer to 0.  Fragments with depth 0 or less are
// therefore never drawn on a cleared buffer.
package shade
