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

// Command shadeframes writes the frames of the demo animation to PNG
// files.
//
// Usage:
//
//	shadeframes [-config demo.yml] [-n frames] [-o dir]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"seehuhn.de/go/shade"
	"seehuhn.de/go/shade/clock"
	"seehuhn.de/go/shade/internal/demo"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	frames := flag.Int("n", -1, "number of frames (overrides the configuration)")
	outDir := flag.String("o", "", "output directory (overrides the configuration)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	shade.SetLogger(logger)

	cfg := demo.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = demo.LoadConfig(*configFile)
		if err != nil {
			slog.Error("cannot load configuration", "error", err)
			os.Exit(1)
		}
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *outDir != "" {
		cfg.Output = *outDir
	}

	if err := run(cfg); err != nil {
		slog.Error("shadeframes failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg demo.Config) error {
	scene, err := demo.NewScene(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.Frames), "rendering")
	defer bar.Close()

	// The clock measures the rendering speed.  The animation itself
	// advances by a fixed step per frame.
	c := clock.New()
	var elapsed float64
	dt := 1 / cfg.FrameRate
	for i := range cfg.Frames {
		img, err := scene.Draw()
		if err != nil {
			return err
		}
		if err := writePNG(filepath.Join(cfg.Output, fmt.Sprintf("frame%04d.png", i)), img); err != nil {
			return err
		}
		scene.Update(dt)
		elapsed += c.Tick()
		_ = bar.Add(1)
	}

	if elapsed > 0 {
		slog.Info("frames written",
			"dir", cfg.Output,
			"frames", c.Frames(),
			"fps", float64(c.Frames())/elapsed)
	}
	return nil
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
