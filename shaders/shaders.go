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

// Package shaders provides ready-made vertex and fragment shaders for
// [shade.Rasterizer].
//
// The vertex shaders in this package expect input vertices of the form
//
//	[x, y, z, a_0, ..., a_{n-1}]
//
// where (x, y) is the position, z the depth and a_0, ..., a_{n-1} the
// attributes which are interpolated across the triangle.  Use [Layout] to
// get the matching [shade.Property].
package shaders

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shade"
	"seehuhn.de/go/shade/texture"
)

// PositionSize is the number of leading vertex attributes which hold the
// position and depth.
const PositionSize = 3

// Layout returns the vertex layout for vertices with n attributes after
// the position.
func Layout(n int) shade.Property {
	return shade.NewProperty(PositionSize+n, n, 3)
}

// Transform returns a vertex shader which maps the position (x, y) by m to
// normalized screen coordinates and copies the remaining attributes.
// The matrix uses the same convention as PDF:
// x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5].
func Transform(m matrix.Matrix) shade.VertexShader {
	return func(in, out []float32) shade.Position {
		x, y := float64(in[0]), float64(in[1])
		copy(out, in[PositionSize:])
		return shade.Position{
			X: m[0]*x + m[2]*y + m[4],
			Y: m[1]*x + m[3]*y + m[5],
			Z: float64(in[2]),
		}
	}
}

// Identity is a vertex shader which uses (x, y) as normalized screen
// coordinates.
var Identity = Transform(matrix.Identity)

// Solid returns a fragment shader which paints every fragment with c.
func Solid(c color.RGBA) shade.FragmentShader {
	return func([]float32) (color.RGBA, bool) {
		return c, true
	}
}

// VertexColor returns a fragment shader which reads an opaque color from
// the three attributes starting at offset.  The channels range from 0 to 1.
func VertexColor(offset int) shade.FragmentShader {
	return func(attr []float32) (color.RGBA, bool) {
		return color.RGBA{
			R: unitToByte(attr[offset]),
			G: unitToByte(attr[offset+1]),
			B: unitToByte(attr[offset+2]),
			A: 0xFF,
		}, true
	}
}

// Textured returns a fragment shader which samples tex at the texture
// coordinates stored in the two attributes starting at offset.
func Textured(tex *texture.Texture, offset int) shade.FragmentShader {
	return func(attr []float32) (color.RGBA, bool) {
		c := tex.RGBA(attr[offset], attr[offset+1])
		return color.RGBAModel.Convert(c).(color.RGBA), true
	}
}

// Modulate returns a fragment shader which multiplies the colors of the
// given shaders channel by channel.  The fragment is discarded if any of
// the shaders discards it.
func Modulate(fs ...shade.FragmentShader) shade.FragmentShader {
	return func(attr []float32) (color.RGBA, bool) {
		res := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
		for _, f := range fs {
			c, ok := f(attr)
			if !ok {
				return color.RGBA{}, false
			}
			res.R = mul8(res.R, c.R)
			res.G = mul8(res.G, c.G)
			res.B = mul8(res.B, c.B)
			res.A = mul8(res.A, c.A)
		}
		return res, true
	}
}

// CircleCutout returns a fragment shader which discards all fragments
// outside the circle of the given radius around (0.5, 0.5), measured in
// the two attributes starting at offset.  Other fragments are passed to
// inner.
func CircleCutout(inner shade.FragmentShader, offset int, radius float32) shade.FragmentShader {
	r2 := radius * radius
	return func(attr []float32) (color.RGBA, bool) {
		du := attr[offset] - 0.5
		dv := attr[offset+1] - 0.5
		if du*du+dv*dv > r2 {
			return color.RGBA{}, false
		}
		return inner(attr)
	}
}

// AlphaTest returns a fragment shader which discards the fragments of
// inner whose alpha is below threshold.
func AlphaTest(inner shade.FragmentShader, threshold uint8) shade.FragmentShader {
	return func(attr []float32) (color.RGBA, bool) {
		c, ok := inner(attr)
		if !ok || c.A < threshold {
			return color.RGBA{}, false
		}
		return c, true
	}
}

func unitToByte(x float32) uint8 {
	return uint8(max(0, min(255, int(x*255+0.5))))
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
