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
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
)

// passThrough expects vertices [x, y, z, a_0, ...] and forwards the a_i.
func passThrough(in, out []float32) Position {
	copy(out, in[3:])
	return Position{X: float64(in[0]), Y: float64(in[1]), Z: float64(in[2])}
}

func solid(c color.RGBA) FragmentShader {
	return func([]float32) (color.RGBA, bool) { return c, true }
}

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func tri(z float32, x0, y0, x1, y1, x2, y2 float32) Triangle {
	return Triangle{
		{x0, y0, z},
		{x1, y1, z},
		{x2, y2, z},
	}
}

func coveredPixels(r *Rasterizer) map[[2]int]bool {
	res := make(map[[2]int]bool)
	img := r.Image()
	w, h := r.Size()
	for y := range h {
		for x := range w {
			if img.RGBAAt(x, y).A != 0 {
				res[[2]int{x, y}] = true
			}
		}
	}
	return res
}

func TestSinglePixelDepth(t *testing.T) {
	r := NewRasterizer(2, 2, NewProperty(3, 0, 3), passThrough, solid(red))

	small := func(z float32) Triangle { return tri(z, 0, 0, 0.25, 0, 0, 0.25) }
	if err := r.Render(small(1)); err != nil {
		t.Fatal(err)
	}

	got := coveredPixels(r)
	if len(got) != 1 || !got[[2]int{0, 0}] {
		t.Fatalf("covered pixels = %v, want only (0,0)", got)
	}
	if d := r.Depth()[0]; d != 1 {
		t.Errorf("depth at (0,0) = %g, want 1", d)
	}

	// farther and equal depths must not overwrite
	r.Fragment = solid(blue)
	for _, z := range []float32{0.5, 1} {
		if err := r.Render(small(z)); err != nil {
			t.Fatal(err)
		}
		if c := r.Image().RGBAAt(0, 0); c != red {
			t.Errorf("after drawing at depth %g: pixel = %v, want %v", z, c, red)
		}
	}

	r.Fragment = solid(green)
	if err := r.Render(small(1.5)); err != nil {
		t.Fatal(err)
	}
	if c := r.Image().RGBAAt(0, 0); c != green {
		t.Errorf("nearer triangle not drawn: pixel = %v", c)
	}
	if d := r.Depth()[0]; d != 1.5 {
		t.Errorf("depth at (0,0) = %g, want 1.5", d)
	}
}

// TestInterpolation checks attribute values and the inclusive coverage
// test on a triangle whose edges pass exactly through pixel corners.
func TestInterpolation(t *testing.T) {
	// The attribute is 0, 1, 2 at the three vertices, so at (s, t) it
	// equals s + 2t.  Sampling pixel (x, y) at (x/4, y/4) gives (x+2y)/4.
	fs := func(attr []float32) (color.RGBA, bool) {
		return color.RGBA{R: uint8(attr[0]*4 + 0.5), A: 255}, true
	}
	r := NewRasterizer(4, 4, NewProperty(4, 1, 3), passThrough, fs)
	err := r.Render(Triangle{
		{0, 0, 1, 0},
		{1, 0, 1, 1},
		{0, 1, 1, 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	img := r.Image()
	for y := range 4 {
		for x := range 4 {
			c := img.RGBAAt(x, y)
			if x+y > 4 {
				if c.A != 0 {
					t.Errorf("pixel (%d,%d) outside the triangle was drawn", x, y)
				}
				continue
			}
			if c.A == 0 {
				t.Errorf("pixel (%d,%d) not drawn", x, y)
				continue
			}
			if want := uint8(x + 2*y); c.R != want {
				t.Errorf("pixel (%d,%d): attribute*4 = %d, want %d", x, y, c.R, want)
			}
		}
	}
}

func TestDepthInterpolation(t *testing.T) {
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, solid(red))
	err := r.Render(Triangle{
		{0, 0, 0.25},
		{1, 0, 0.75},
		{0, 1, 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	depth := r.Depth()
	for y := range 4 {
		for x := range 4 - y {
			s, tt := float64(x)/4, float64(y)/4
			want := 0.25 + 0.5*s + 0.25*tt
			if got := float64(depth[y*4+x]); math.Abs(got-want) > 1e-6 {
				t.Errorf("depth at (%d,%d) = %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestOrientation(t *testing.T) {
	ccw := tri(1, 0.1, 0.1, 0.9, 0.2, 0.3, 0.8)
	cw := Triangle{ccw[0], ccw[2], ccw[1]}

	r1 := NewRasterizer(16, 16, NewProperty(3, 0, 3), passThrough, solid(red))
	r2 := NewRasterizer(16, 16, NewProperty(3, 0, 3), passThrough, solid(red))
	if err := r1.Render(ccw); err != nil {
		t.Fatal(err)
	}
	if err := r2.Render(cw); err != nil {
		t.Fatal(err)
	}

	a, b := coveredPixels(r1), coveredPixels(r2)
	if len(a) < 50 {
		t.Fatalf("only %d pixels covered", len(a))
	}

	// Samples which lie exactly on an edge may be decided differently
	// by rounding.
	diff := 0
	for p := range a {
		if !b[p] {
			diff++
		}
	}
	for p := range b {
		if !a[p] {
			diff++
		}
	}
	if diff > 2 {
		t.Errorf("winding changes coverage of %d pixels", diff)
	}
}

// TestFlatEdge draws a triangle with V0.Y == V2.Y, which needs a
// different vertex as the origin of the interpolation basis.
func TestFlatEdge(t *testing.T) {
	fs := func(attr []float32) (color.RGBA, bool) {
		return color.RGBA{R: uint8(attr[0]*4 + 0.5), A: 255}, true
	}
	v0 := []float32{0, 0, 1, 0}
	v1 := []float32{0, 1, 1, 1}
	v2 := []float32{1, 0, 1, 2}

	r1 := NewRasterizer(4, 4, NewProperty(4, 1, 3), passThrough, fs)
	if err := r1.Render(Triangle{v0, v1, v2}); err != nil {
		t.Fatal(err)
	}
	r2 := NewRasterizer(4, 4, NewProperty(4, 1, 3), passThrough, fs)
	if err := r2.Render(Triangle{v1, v2, v0}); err != nil {
		t.Fatal(err)
	}

	if n := len(coveredPixels(r1)); n != 13 {
		t.Errorf("%d pixels covered, want 13", n)
	}
	p1, p2 := r1.Image().Pix, r2.Image().Pix
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("vertex order changes the image at byte %d", i)
		}
	}
}

func TestDegenerate(t *testing.T) {
	r := NewRasterizer(8, 8, NewProperty(3, 0, 3), passThrough, solid(red))
	cases := []Triangle{
		tri(1, 0.1, 0.1, 0.5, 0.5, 0.9, 0.9), // collinear
		tri(1, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5), // single point
		tri(1, 0.1, 0.5, 0.9, 0.5, 0.4, 0.5), // horizontal line
		tri(1, 0.5, 0.1, 0.5, 0.9, 0.5, 0.4), // vertical line
		{{float32(math.NaN()), 0, 1}, {1, 0, 1}, {0, 1, 1}},
		{{float32(math.Inf(1)), 0, 1}, {1, 0, 1}, {0, 1, 1}},
		{{0, 0, float32(math.NaN())}, {1, 0, 1}, {0, 1, 1}},
	}
	for i, c := range cases {
		if err := r.Render(c); err != nil {
			t.Errorf("case %d: unexpected error %v", i, err)
		}
	}
	if got := coveredPixels(r); len(got) != 0 {
		t.Errorf("degenerate triangles drew %d pixels", len(got))
	}
}

func TestOffscreen(t *testing.T) {
	r := NewRasterizer(8, 8, NewProperty(3, 0, 3), passThrough, solid(red))
	for _, c := range []Triangle{
		tri(1, -2, -2, -1, -2, -2, -1),
		tri(1, 2, 2, 3, 2, 2, 3),
		tri(1, 0.2, -3, 0.8, -3, 0.5, -2),
	} {
		if err := r.Render(c); err != nil {
			t.Fatal(err)
		}
	}
	if got := coveredPixels(r); len(got) != 0 {
		t.Errorf("off-screen triangles drew %d pixels", len(got))
	}

	// a huge triangle covers every pixel
	if err := r.Render(tri(1, -100, -100, 300, -100, -100, 300)); err != nil {
		t.Fatal(err)
	}
	if got := coveredPixels(r); len(got) != 64 {
		t.Errorf("huge triangle drew %d pixels, want 64", len(got))
	}
}

func TestClip(t *testing.T) {
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, solid(red))
	r.Clip = rect.Rect{LLx: 1, LLy: 1, URx: 3, URy: 3}
	if err := r.Render(tri(1, -1, -1, 3, -1, -1, 3)); err != nil {
		t.Fatal(err)
	}
	got := coveredPixels(r)
	if len(got) != 4 {
		t.Errorf("%d pixels drawn, want 4", len(got))
	}
	for p := range got {
		if p[0] < 1 || p[0] > 2 || p[1] < 1 || p[1] > 2 {
			t.Errorf("pixel %v outside the clip rectangle", p)
		}
	}
}

func TestDiscard(t *testing.T) {
	discard := func([]float32) (color.RGBA, bool) { return color.RGBA{}, false }
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, discard)
	r.Clear(blue)

	big := tri(1, -1, -1, 3, -1, -1, 3)
	if err := r.Render(big); err != nil {
		t.Fatal(err)
	}
	for i, d := range r.Depth() {
		if d != 0 {
			t.Fatalf("discarded fragment changed depth at %d to %g", i, d)
		}
	}
	if c := r.Image().RGBAAt(2, 2); c != blue {
		t.Fatalf("discarded fragment changed color to %v", c)
	}

	// a farther triangle is still drawn where fragments were discarded
	r.Fragment = solid(red)
	if err := r.Render(tri(0.5, -1, -1, 3, -1, -1, 3)); err != nil {
		t.Fatal(err)
	}
	if c := r.Image().RGBAAt(2, 2); c != red {
		t.Errorf("pixel = %v, want %v", c, red)
	}
}

func TestDrawOrderIndependence(t *testing.T) {
	far := tri(0.25, -1, -1, 3, -1, -1, 3)
	near := tri(0.75, 0.1, 0.1, 0.9, 0.3, 0.2, 0.9)

	draw := func(order ...Triangle) []uint8 {
		r := NewRasterizer(32, 32, NewProperty(3, 0, 3), passThrough, nil)
		for i, tr := range order {
			if tr[0][2] == 0.25 {
				r.Fragment = solid(red)
			} else {
				r.Fragment = solid(green)
			}
			if err := r.Render(tr); err != nil {
				t.Fatalf("triangle %d: %v", i, err)
			}
		}
		return r.Image().Pix
	}

	a := draw(far, near)
	b := draw(near, far)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw order changes the image at byte %d", i)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, nil)
	if err := r.Render(tri(1, 0, 0, 1, 0, 0, 1)); !errors.Is(err, ErrNoShader) {
		t.Errorf("missing fragment shader: got %v", err)
	}

	r.Fragment = solid(red)
	bad := Triangle{{0, 0, 1}, {1, 0}, {0, 1, 1}}
	if err := r.Render(bad); !errors.Is(err, ErrAttributeCount) {
		t.Errorf("short vertex: got %v", err)
	}
	bad[1] = []float32{1, 0, 1, 7}
	if err := r.Render(bad); !errors.Is(err, ErrAttributeCount) {
		t.Errorf("long vertex: got %v", err)
	}
	if got := coveredPixels(r); len(got) != 0 {
		t.Errorf("failed calls drew %d pixels", len(got))
	}
}

func TestRenderIndexed(t *testing.T) {
	vertices := [][]float32{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{0, 1, 1},
	}
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, solid(red))

	if err := r.RenderIndexed(vertices, []int{0, 1, 2, 0}); !errors.Is(err, ErrIndex) {
		t.Errorf("incomplete triangle: got %v", err)
	}
	if err := r.RenderIndexed(vertices, []int{0, 1, 4}); !errors.Is(err, ErrIndex) {
		t.Errorf("index out of range: got %v", err)
	}
	if err := r.RenderIndexed(vertices, []int{0, -1, 2}); !errors.Is(err, ErrIndex) {
		t.Errorf("negative index: got %v", err)
	}
	if got := coveredPixels(r); len(got) != 0 {
		t.Fatalf("invalid index lists drew %d pixels", len(got))
	}

	if err := r.RenderIndexed(vertices, []int{0, 1, 2, 0, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if got := coveredPixels(r); len(got) != 16 {
		t.Errorf("quad covers %d pixels, want 16", len(got))
	}
}

func TestSetResolution(t *testing.T) {
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, solid(red))
	if err := r.Render(tri(1, -1, -1, 3, -1, -1, 3)); err != nil {
		t.Fatal(err)
	}
	r.Clip = rect.Rect{URx: 1, URy: 1}

	r.SetResolution(3, 2)
	if w, h := r.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = %d×%d, want 3×2", w, h)
	}
	if b := r.Image().Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("image bounds %v", b)
	}
	if len(r.Depth()) != 6 {
		t.Errorf("depth buffer has %d entries, want 6", len(r.Depth()))
	}
	if got := coveredPixels(r); len(got) != 0 {
		t.Errorf("color buffer not cleared")
	}
	for _, d := range r.Depth() {
		if d != 0 {
			t.Fatal("depth buffer not cleared")
		}
	}
	if want := (rect.Rect{URx: 3, URy: 2}); r.Clip != want {
		t.Errorf("Clip = %v, want %v", r.Clip, want)
	}

	r.SetResolution(0, -5)
	if w, h := r.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %d×%d, want 1×1", w, h)
	}
}

func TestClear(t *testing.T) {
	r := NewRasterizer(3, 3, NewProperty(3, 0, 3), passThrough, solid(red))
	if err := r.Render(tri(1, -1, -1, 3, -1, -1, 3)); err != nil {
		t.Fatal(err)
	}

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	r.ClearColor(bg)
	if r.Depth()[4] != 1 {
		t.Error("ClearColor changed the depth buffer")
	}
	r.Clear(bg)
	for y := range 3 {
		for x := range 3 {
			if c := r.Image().RGBAAt(x, y); c != bg {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, c, bg)
			}
		}
	}
	for i, d := range r.Depth() {
		if d != 0 {
			t.Errorf("depth[%d] = %g after Clear", i, d)
		}
	}
}

func TestSetProperty(t *testing.T) {
	r := NewRasterizer(4, 4, NewProperty(3, 0, 3), passThrough, solid(red))
	r.SetProperty(NewProperty(6, 3, 3))
	if p := r.Property(); p.InputSize() != 6 || p.OutputSize() != 3 {
		t.Fatalf("Property() = %+v", p)
	}

	var seen []float32
	r.Fragment = func(attr []float32) (color.RGBA, bool) {
		seen = append(seen[:0], attr...)
		return red, true
	}
	err := r.Render(Triangle{
		{-1, -1, 1, 0.5, 0.5, 0.5},
		{3, -1, 1, 0.5, 0.5, 0.5},
		{-1, 3, 1, 0.5, 0.5, 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 {
		t.Fatalf("fragment shader saw %d attributes, want 3", len(seen))
	}
	for i, a := range seen {
		if math.Abs(float64(a)-0.5) > 1e-5 {
			t.Errorf("attribute %d = %g, want 0.5", i, a)
		}
	}
}

func TestRenderNoAllocs(t *testing.T) {
	r := NewRasterizer(64, 64, NewProperty(4, 1, 3), passThrough, func(attr []float32) (color.RGBA, bool) {
		return color.RGBA{R: uint8(attr[0] * 255), A: 255}, true
	})
	tr := Triangle{
		{0.1, 0.1, 1, 0},
		{0.9, 0.2, 1, 1},
		{0.3, 0.9, 1, 0.5},
	}
	allocs := testing.AllocsPerRun(20, func() {
		r.ClearDepth()
		_ = r.Render(tr)
	})
	if allocs != 0 {
		t.Errorf("Render allocates %g times per call", allocs)
	}
}
