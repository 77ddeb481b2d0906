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

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrAttributeCount is returned by Render if a vertex does not have the
	// number of attributes declared in the rasterizer's [Property].
	ErrAttributeCount = errors.New("shade: wrong number of vertex attributes")

	// ErrNoShader is returned by Render if the vertex or fragment shader is
	// not set.
	ErrNoShader = errors.New("shade: missing shader")

	// ErrIndex is returned by RenderIndexed for malformed index lists.
	ErrIndex = errors.New("shade: invalid vertex index")
)

// Rasterizer draws triangles into a color buffer and a depth buffer.
// Create one instance and reuse it for all triangles of all frames.
// Internal buffers grow as needed but never shrink, so that drawing does
// not allocate in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Vertex is applied to each vertex of a triangle.
	Vertex VertexShader

	// Fragment is applied to each covered pixel which passes the depth test.
	Fragment FragmentShader

	// Clip limits drawing to this rectangle in device pixels.
	// Coordinates must be integer-aligned.  The parts outside the buffer
	// are ignored.  SetResolution resets Clip to the full buffer.
	Clip rect.Rect

	prop           Property
	width, height  int
	wScale, hScale float64 // size of one pixel in normalized coordinates

	img   *image.RGBA
	depth []float32

	// vertex stage results, reused across calls
	out [3][]float32
	pos [3]Position

	// Interpolation basis of the current triangle.  An attribute at
	// (s, t) has the value base + s*svec + t*tvec.
	origin  vec.Vec2  // screen position of the origin vertex
	sy      float64   // Y1 - Y0
	tInvY   float64   // 1 / (Y2 - Y0)
	tRatio  float64   // (X2 - X0) / (Y2 - Y0)
	sFactor float64   // 1 / ((X1 - X0) - (Y1 - Y0)*tRatio)
	z0      float64   // depth at the origin
	dz1     float64   // Z1 - Z0
	dz2     float64   // Z2 - Z0
	base    []float32 // attributes at the origin
	svec    []float32 // attribute change from vertex 0 to vertex 1
	tvec    []float32 // attribute change from vertex 0 to vertex 2
	cache   []float32 // attributes at the current pixel
	dcvec   []float32 // change of cache per pixel along a scanline
	frag    []float32 // copy of cache passed to the fragment shader
}

// NewRasterizer returns a Rasterizer with a width×height color buffer and
// depth buffer, both cleared to zero.
func NewRasterizer(width, height int, prop Property, vs VertexShader, fs FragmentShader) *Rasterizer {
	r := &Rasterizer{
		Vertex:   vs,
		Fragment: fs,
	}
	r.SetProperty(prop)
	r.SetResolution(width, height)
	return r
}

// SetResolution changes the size of the color and depth buffers.
// Both buffers are cleared and Clip is reset to cover the whole buffer.
// Sizes smaller than one pixel are replaced by 1.
func (r *Rasterizer) SetResolution(width, height int) {
	if width < 1 || height < 1 {
		Logger().Warn("invalid resolution, clamping to 1",
			slog.Int("width", width), slog.Int("height", height))
		width = max(width, 1)
		height = max(height, 1)
	}

	r.width = width
	r.height = height
	r.wScale = 1 / float64(width)
	r.hScale = 1 / float64(height)

	n := width * height
	var pix []uint8
	if r.img != nil {
		pix = r.img.Pix
	}
	pix = resize(pix, 4*n)
	clear(pix)
	r.img = &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	r.depth = resize(r.depth, n)
	clear(r.depth)

	r.Clip = rect.Rect{URx: float64(width), URy: float64(height)}
}

// SetProperty changes the vertex layout.
func (r *Rasterizer) SetProperty(prop Property) {
	r.prop = prop
	n := prop.OutputSize()
	for i := range r.out {
		r.out[i] = resize(r.out[i], n)
	}
	r.base = resize(r.base, n)
	r.svec = resize(r.svec, n)
	r.tvec = resize(r.tvec, n)
	r.cache = resize(r.cache, n)
	r.dcvec = resize(r.dcvec, n)
	r.frag = resize(r.frag, n)
}

// Property returns the current vertex layout.
func (r *Rasterizer) Property() Property {
	return r.prop
}

// Size returns the size of the buffers in pixels.
func (r *Rasterizer) Size() (width, height int) {
	return r.width, r.height
}

// Image returns the color buffer.
// The image is updated in place by later calls to Render and Clear, and
// replaced by SetResolution.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Depth returns the depth buffer, in row-major order.
func (r *Rasterizer) Depth() []float32 {
	return r.depth
}

// Clear fills the color buffer with c and resets the depth buffer.
func (r *Rasterizer) Clear(c color.RGBA) {
	r.ClearColor(c)
	r.ClearDepth()
}

// ClearColor fills the color buffer with c.
func (r *Rasterizer) ClearColor(c color.RGBA) {
	pix := r.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// ClearDepth sets the depth buffer to 0, the farthest depth.
func (r *Rasterizer) ClearDepth() {
	clear(r.depth)
}

// Render draws one triangle.
//
// Degenerate triangles and triangles outside of Clip are silently skipped.
// An error is returned, before anything is drawn, if the shaders are not
// set or if a vertex has the wrong number of attributes.
func (r *Rasterizer) Render(tri Triangle) error {
	if r.Vertex == nil || r.Fragment == nil {
		return ErrNoShader
	}
	want := r.prop.InputSize()
	for i, v := range tri {
		if len(v) != want {
			return fmt.Errorf("vertex %d has %d attributes, want %d: %w",
				i, len(v), want, ErrAttributeCount)
		}
	}

	for i := range tri {
		r.pos[i] = r.Vertex(tri[i], r.out[i])
	}

	xMin, xMax, yMin, yMax, ok := r.boundingBox()
	if !ok {
		return nil
	}
	if !r.setup() {
		return nil
	}
	r.scan(xMin, xMax, yMin, yMax)
	return nil
}

// RenderIndexed draws a list of triangles.  Each consecutive group of three
// entries in indices selects the vertices of one triangle.
func (r *Rasterizer) RenderIndexed(vertices [][]float32, indices []int) error {
	if len(indices)%verticesPerPrimitive != 0 {
		return fmt.Errorf("%d indices do not form whole triangles: %w", len(indices), ErrIndex)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return fmt.Errorf("index %d out of range [0, %d): %w", idx, len(vertices), ErrIndex)
		}
	}

	var tri Triangle
	for i := 0; i < len(indices); i += verticesPerPrimitive {
		tri[0] = vertices[indices[i]]
		tri[1] = vertices[indices[i+1]]
		tri[2] = vertices[indices[i+2]]
		if err := r.Render(tri); err != nil {
			return err
		}
	}
	return nil
}

// boundingBox returns the inclusive pixel range spanned by the projected
// vertices, limited to the buffer and to Clip.
func (r *Rasterizer) boundingBox() (xMin, xMax, yMin, yMax int, ok bool) {
	p0, p1, p2 := r.pos[0], r.pos[1], r.pos[2]
	fxMin := min(p0.X, p1.X, p2.X)
	fxMax := max(p0.X, p1.X, p2.X)
	fyMin := min(p0.Y, p1.Y, p2.Y)
	fyMax := max(p0.Y, p1.Y, p2.Y)
	if math.IsNaN(fxMin) || math.IsNaN(fyMin) {
		return 0, 0, 0, 0, false
	}

	clipXMin := max(int(r.Clip.LLx), 0)
	clipXMax := min(int(r.Clip.URx), r.width)
	clipYMin := max(int(r.Clip.LLy), 0)
	clipYMax := min(int(r.Clip.URy), r.height)

	xMin = max(pixelIndex(fxMin, r.width), clipXMin)
	xMax = min(pixelIndex(fxMax, r.width), clipXMax-1)
	yMin = max(pixelIndex(fyMin, r.height), clipYMin)
	yMax = min(pixelIndex(fyMax, r.height), clipYMax-1)

	if xMin > xMax || yMin > yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// pixelIndex converts a normalized coordinate into a pixel index, rounding
// halves up.  The result is limited to [-1, n].
func pixelIndex(v float64, n int) int {
	p := math.Floor(v*float64(n) + 0.5)
	if p < -1 {
		return -1
	}
	if p > float64(n) {
		return n
	}
	return int(p)
}

// setup computes the interpolation basis for the projected triangle.
// It reports false for degenerate triangles.
func (r *Rasterizer) setup() bool {
	for _, p := range r.pos {
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.Z) || math.IsInf(p.Z, 0) {
			return false
		}
	}

	// The basis needs Y2 != Y0.  If the first vertex does not allow this,
	// rotate the vertex order, which keeps orientation and attributes.
	k := -1
	for i := range verticesPerPrimitive {
		dy := r.pos[(i+2)%3].Y - r.pos[i].Y
		if math.Abs(dy) > flatEdgeThreshold {
			k = i
			break
		}
	}
	if k < 0 {
		return false
	}
	i0, i1, i2 := k, (k+1)%3, (k+2)%3
	p0, p1, p2 := r.pos[i0], r.pos[i1], r.pos[i2]

	r.origin = vec.Vec2{X: p0.X, Y: p0.Y}
	e1 := vec.Vec2{X: p1.X, Y: p1.Y}.Sub(r.origin)
	e2 := vec.Vec2{X: p2.X, Y: p2.Y}.Sub(r.origin)

	r.tInvY = 1 / e2.Y
	r.tRatio = e2.X * r.tInvY
	den := e1.X - e1.Y*r.tRatio
	if math.Abs(den*e2.Y) < degenerateAreaThreshold {
		return false
	}
	r.sFactor = 1 / den
	r.sy = e1.Y

	r.z0 = p0.Z
	r.dz1 = p1.Z - p0.Z
	r.dz2 = p2.Z - p0.Z

	out0, out1, out2 := r.out[i0], r.out[i1], r.out[i2]
	copy(r.base, out0)
	for i := range r.base {
		r.svec[i] = out1[i] - out0[i]
		r.tvec[i] = out2[i] - out0[i]
	}

	// One pixel to the right changes s by ds and t by dt.
	ds := r.wScale * r.sFactor
	dt := -ds * r.sy * r.tInvY
	fds, fdt := float32(ds), float32(dt)
	for i := range r.dcvec {
		r.dcvec[i] = fds*r.svec[i] + fdt*r.tvec[i]
	}
	return true
}

// scan visits the pixels of the inclusive range [xMin, xMax]×[yMin, yMax].
// Each pixel is sampled at its top-left corner.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int) {
	pix := r.img.Pix
	stride := r.img.Stride

	for y := yMin; y <= yMax; y++ {
		vy := float64(y)*r.hScale - r.origin.Y
		row := y * r.width

		// cacheValid is true while cache holds the attributes of the
		// previous pixel, so that the next pixel needs only one addition
		// per attribute.
		cacheValid := false
		for x := xMin; x <= xMax; x++ {
			vx := float64(x)*r.wScale - r.origin.X
			s := (vx - vy*r.tRatio) * r.sFactor
			t := (vy - s*r.sy) * r.tInvY
			if !(s >= 0 && t >= 0 && s+t <= 1) {
				cacheValid = false
				continue
			}

			if cacheValid {
				for i, d := range r.dcvec {
					r.cache[i] += d
				}
			} else {
				fs, ft := float32(s), float32(t)
				for i, b := range r.base {
					r.cache[i] = b + fs*r.svec[i] + ft*r.tvec[i]
				}
				cacheValid = true
			}

			idx := row + x
			z := float32(r.z0 + s*r.dz1 + t*r.dz2)
			if !(z > r.depth[idx]) {
				continue
			}

			copy(r.frag, r.cache)
			c, ok := r.Fragment(r.frag)
			if !ok {
				continue
			}
			r.depth[idx] = z
			off := y*stride + 4*x
			pix[off+0] = c.R
			pix[off+1] = c.G
			pix[off+2] = c.B
			pix[off+3] = c.A
		}
	}
}

// resize returns a slice of length n, reusing the capacity of s.
func resize[T any](s []T, n int) []T {
	return slices.Grow(s[:0], n)[:n]
}

// Numerical tolerances for triangle setup, in normalized coordinates.
const (
	// flatEdgeThreshold is the minimum vertical extent of the edge from
	// the origin vertex to vertex 2.
	flatEdgeThreshold = 1e-12

	// degenerateAreaThreshold is the minimum of twice the triangle area.
	// Smaller triangles are skipped.
	degenerateAreaThreshold = 1e-14
)
