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

// Command export writes test case definitions to JSON for external
// reference renderers.  Run from the module root directory.
package main

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/shade/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := write("testdata/testcases.json", out); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func write(name string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Triangles []jsonTriangle `json:"triangles"`
}

type jsonTriangle struct {
	Vertices [3][3]float64 `json:"vertices"` // x, y in pixels; depth
	Gray     float64       `json:"gray"`
}

// toJSON converts a test case to device pixel coordinates.
func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	m := tc.Matrix()
	w, h := float64(tc.Width), float64(tc.Height)
	for _, tri := range tc.Triangles {
		jt := jsonTriangle{Gray: tri.Gray}
		for i, v := range tri.Vertices {
			x := m[0]*v.X + m[2]*v.Y + m[4]
			y := m[1]*v.X + m[3]*v.Y + m[5]
			jt.Vertices[i] = [3]float64{x * w, y * h, tri.Depth[i]}
		}
		jtc.Triangles = append(jtc.Triangles, jt)
	}
	return jtc
}
