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

package demo

import (
	"image"
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shade"
	"seehuhn.de/go/shade/shaders"
	"seehuhn.de/go/shade/texture"
)

// Offsets of the interpolated attributes.  The vertices have the layout
// [x, y, z, u, v, r, g, b].
const (
	attrUV    = 0
	attrColor = 2
	numAttrs  = 5
)

// quadSize is the side length of the quad, relative to the shorter side
// of the color buffer.
const quadSize = 0.8

// Background is the color of pixels not covered by the quad.
var Background = color.RGBA{R: 0x20, G: 0x20, B: 0x30, A: 0xFF}

// quad is centred at the origin, with texture coordinates covering the
// whole texture and a different color at each corner.
var (
	quadVertices = [][]float32{
		{-0.5, -0.5, 1, 0, 0, 1, 0, 0},
		{0.5, -0.5, 1, 1, 0, 0, 1, 0},
		{0.5, 0.5, 1, 1, 1, 0, 0, 1},
		{-0.5, 0.5, 1, 0, 1, 1, 1, 1},
	}
	quadIndices = []int{0, 1, 2, 0, 2, 3}
)

// Scene is a textured, vertex-colored quad which rotates about the centre
// of the color buffer.
type Scene struct {
	r *shade.Rasterizer

	period  float32
	easing  ease.TweenFunc
	spin    *gween.Tween
	elapsed float32 // time since the start of the current revolution
	angle   float64 // degrees
}

// NewScene creates the scene described by cfg.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var tex *texture.Texture
	if cfg.Texture != "" {
		var err error
		tex, err = texture.LoadFile(cfg.Texture)
		if err != nil {
			return nil, err
		}
	} else {
		tex = Checkerboard(64, 8)
	}

	fs := shaders.Modulate(
		shaders.Textured(tex, attrUV),
		shaders.VertexColor(attrColor),
	)
	if cfg.Cutout {
		fs = shaders.CircleCutout(fs, attrUV, 0.5)
	}

	s := &Scene{
		r:      shade.NewRasterizer(cfg.Width, cfg.Height, shaders.Layout(numAttrs), nil, fs),
		period: float32(cfg.Period),
		easing: easings[cfg.Easing],
	}
	s.spin = gween.New(0, 360, s.period, s.easing)
	return s, nil
}

// Update advances the animation by dt seconds.
func (s *Scene) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	s.elapsed += float32(dt)
	val, finished := s.spin.Update(float32(dt))
	if finished {
		s.elapsed = float32(math.Mod(float64(s.elapsed), float64(s.period)))
		s.spin = gween.New(0, 360, s.period, s.easing)
		val, _ = s.spin.Update(s.elapsed)
	}
	s.angle = float64(val)
}

// Angle returns the current rotation in degrees.
func (s *Scene) Angle() float64 {
	return s.angle
}

// Resize changes the size of the color buffer.
func (s *Scene) Resize(width, height int) {
	if w, h := s.r.Size(); w == width && h == height {
		return
	}
	s.r.SetResolution(width, height)
}

// Draw renders the current state of the animation.  The returned image is
// reused by the next call.
func (s *Scene) Draw() (*image.RGBA, error) {
	s.r.Clear(Background)
	s.r.Vertex = shaders.Transform(s.transform())
	if err := s.r.RenderIndexed(quadVertices, quadIndices); err != nil {
		return nil, err
	}
	return s.r.Image(), nil
}

// transform maps the quad to normalized screen coordinates, keeping it
// square on non-square buffers.
func (s *Scene) transform() matrix.Matrix {
	w, h := s.r.Size()
	short := float64(min(w, h))
	sx := quadSize * short / float64(w)
	sy := quadSize * short / float64(h)
	return matrix.RotateDeg(s.angle).Mul(matrix.Scale(sx, sy)).Translate(0.5, 0.5)
}

// Checkerboard returns a size×size texture with cells×cells light and dark
// squares.
func Checkerboard(size, cells int) *texture.Texture {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	light := color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	dark := color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return texture.FromImage(img)
}
