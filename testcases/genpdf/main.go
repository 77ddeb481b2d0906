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

// Command genpdf generates reference images for the rasterizer tests.
// It creates PDFs from test cases and renders them to PNGs using Ghostscript.
//
// PDF has no depth buffer, so triangles are painted in order of increasing
// mean depth.  Test cases with triangles which intersect in depth are
// therefore only approximated.
package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shade/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := run(); err != nil {
		slog.Error("genpdf failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Info("reference written", "name", name)
		}
	}
	return nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: 0 = no coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	// The rasterizer samples pixel corners, Ghostscript pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})
	// normalized coordinates to pixels
	page.Transform(matrix.Scale(float64(tc.Width), float64(tc.Height)))
	if m := tc.Matrix(); m != matrix.Identity {
		page.Transform(m)
	}

	// Edges are inclusive, so outline every triangle with a hairline.
	page.SetLineWidth(0)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	tris := slices.Clone(tc.Triangles)
	slices.SortStableFunc(tris, func(a, b testcases.Triangle) int {
		return cmp.Compare(a.MeanDepth(), b.MeanDepth())
	})
	for _, tri := range tris {
		page.SetFillColor(color.DeviceGray(tri.Gray))
		page.SetStrokeColor(color.DeviceGray(tri.Gray))
		v := tri.Vertices
		outline := func() {
			page.MoveTo(v[0].X, v[0].Y)
			page.LineTo(v[1].X, v[1].Y)
			page.LineTo(v[2].X, v[2].Y)
			page.ClosePath()
		}
		outline()
		page.Fill()
		outline()
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
