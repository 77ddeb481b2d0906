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

// Package texture stores images with power-of-two dimensions, for sampling
// from fragment shaders with wrap-around texture coordinates.
package texture

import (
	"image"
	"image/color"
	"math"
)

// Number of channels per texel, and their order in the texel buffer.
const (
	NumChannels = 4
	R           = 0
	G           = 1
	B           = 2
	A           = 3
)

// Texture is an RGBA image whose width and height are powers of two.
// Channel values are non-premultiplied and range from 0 to 255.
//
// A Texture is not modified after construction and may be shared between
// goroutines.
type Texture struct {
	width  Size
	height Size
	pix    []float32 // row-major, NumChannels values per texel
}

// New returns a 1×1 texture.  All channels, including alpha, are zero.
func New() *Texture {
	return &Texture{
		width:  sizes[0],
		height: sizes[0],
		pix:    make([]float32, NumChannels),
	}
}

// FromImage returns a copy of img, resampled to the nearest power-of-two
// dimensions which are at least as large as the image.
// Resampling uses the nearest source pixel.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return New()
	}

	t := &Texture{
		width:  ClosestMatch(srcW),
		height: ClosestMatch(srcH),
	}
	w, h := t.width.Value, t.height.Value
	t.pix = make([]float32, w*h*NumChannels)

	for y := range h {
		sy := sourceIndex(y, h, srcH) + bounds.Min.Y
		for x := range w {
			sx := sourceIndex(x, w, srcW) + bounds.Min.X
			c := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			i := (x | y<<t.width.Bits) * NumChannels
			t.pix[i+R] = float32(c.R)
			t.pix[i+G] = float32(c.G)
			t.pix[i+B] = float32(c.B)
			t.pix[i+A] = float32(c.A)
		}
	}
	return t
}

// sourceIndex maps destination pixel i of n onto a source of size srcN.
func sourceIndex(i, n, srcN int) int {
	s := int(math.Floor(float64(i)/float64(n)*float64(srcN) + 0.5))
	return min(s, srcN-1)
}

// Width returns the width of the texture.
func (t *Texture) Width() Size { return t.width }

// Height returns the height of the texture.
func (t *Texture) Height() Size { return t.height }

// Pix returns the texel buffer: rows of Width().Value texels, each with
// NumChannels values in the order R, G, B, A.  The buffer must not be
// modified.
func (t *Texture) Pix() []float32 { return t.pix }

// Index returns the texel index for the texture coordinates (u, v).
// The coordinates are normalized, so that (0, 0) is the top-left corner
// and (1, 1) the bottom-right corner of the texture.  Coordinates outside
// this range wrap around.
//
// Shifting u or v by an integer k selects the same texel only if the
// shifted coordinate is exactly representable as a float32.  Near a texel
// boundary the rounding of u+k itself can select the neighbouring texel.
//
// Multiply the result by [NumChannels] to get an offset into Pix.
func (t *Texture) Index(u, v float32) int {
	x := roundHalfUp(u*float32(t.width.Value)) & t.width.Mask
	y := roundHalfUp(v*float32(t.height.Value)) & t.height.Mask
	return x | y<<t.width.Bits
}

// Sample returns the texel at the texture coordinates (u, v).
// See [Texture.Index] for the coordinate convention.
func (t *Texture) Sample(u, v float32) [NumChannels]float32 {
	i := t.Index(u, v) * NumChannels
	return [NumChannels]float32(t.pix[i : i+NumChannels])
}

// RGBA returns the texel at (u, v) as a color.
func (t *Texture) RGBA(u, v float32) color.NRGBA {
	i := t.Index(u, v) * NumChannels
	p := t.pix[i : i+NumChannels : i+NumChannels]
	return color.NRGBA{R: uint8(p[R]), G: uint8(p[G]), B: uint8(p[B]), A: uint8(p[A])}
}

// roundHalfUp rounds to the nearest integer, with halves rounded towards
// +∞.  Unlike math.Round this commutes with adding integers.
func roundHalfUp(x float32) int {
	f := math.Floor(float64(x) + 0.5)
	if f >= math.MaxInt32 || f <= math.MinInt32 || math.IsNaN(f) {
		return 0
	}
	return int(f)
}
