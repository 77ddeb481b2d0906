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

// Command shadeview shows the demo scene in a window.
//
// Usage:
//
//	shadeview [-config demo.yml] [-cutout] [-pacing]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"seehuhn.de/go/shade"
	"seehuhn.de/go/shade/clock"
	"seehuhn.de/go/shade/internal/demo"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	cutout := flag.Bool("cutout", false, "discard fragments outside the inscribed circle")
	pacing := flag.Bool("pacing", false, "pace frames with the frame clock instead of the display")
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
	cfg.Cutout = cfg.Cutout || *cutout
	cfg.Pacing = cfg.Pacing || *pacing

	if err := run(cfg); err != nil {
		slog.Error("shadeview failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg demo.Config) error {
	scene, err := demo.NewScene(cfg)
	if err != nil {
		return err
	}

	var opts []clock.Option
	if cfg.Pacing {
		opts = append(opts, clock.WithPacing(clock.DefaultInterval))
		ebiten.SetTPS(ebiten.SyncWithFPS)
		ebiten.SetVsyncEnabled(false)
	}

	v := &viewer{
		scene:  scene,
		clock:  clock.New(opts...),
		width:  cfg.Width,
		height: cfg.Height,
		img:    ebiten.NewImage(cfg.Width, cfg.Height),
	}

	ebiten.SetWindowTitle("shade")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(v)
}

// viewer renders the scene on the CPU and uploads the color buffer once
// per frame.
type viewer struct {
	scene         *demo.Scene
	clock         *clock.Clock
	width, height int
	img           *ebiten.Image
}

func (v *viewer) Update() error {
	v.scene.Update(v.clock.Tick())
	frame, err := v.scene.Draw()
	if err != nil {
		return err
	}
	v.img.WritePixels(frame.Pix)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.img, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %d\nframe: %d", v.clock.FrameRate(), v.clock.Frames()))
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}
