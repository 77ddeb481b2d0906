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

// Package demo implements the rotating-quad scene shown by the shadeview
// and shadeframes commands.
package demo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/shade"
)

// Config holds the settings of the demo scene and of the commands which
// display it.
type Config struct {
	// Size of the color buffer in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Texture string `yaml:"texture"` // image file; empty for a checkerboard

	Period float64 `yaml:"period"` // seconds per revolution
	Easing string  `yaml:"easing"` // see [Easings]
	Cutout bool    `yaml:"cutout"` // discard fragments outside the inscribed circle

	Pacing bool `yaml:"pacing"` // let the frame clock wait for the frame interval

	Frames    int     `yaml:"frames"`     // number of frames written by shadeframes
	FrameRate float64 `yaml:"frame_rate"` // animation frames per second for shadeframes
	Output    string  `yaml:"output"`     // output directory for shadeframes
}

// DefaultConfig returns the settings used for fields which are missing
// from the configuration file.
func DefaultConfig() Config {
	return Config{
		Width:     640,
		Height:    480,
		Period:    4,
		Easing:    "linear",
		Frames:    120,
		FrameRate: 30,
		Output:    "frames",
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_out_quad":  ease.InOutQuad,
	"in_out_cubic": ease.InOutCubic,
	"in_out_sine":  ease.InOutSine,
	"out_cubic":    ease.OutCubic,
	"out_bounce":   ease.OutBounce,
	"out_elastic":  ease.OutElastic,
}

// Easings returns the names of the supported easing functions.
func Easings() []string {
	return slices.Sorted(maps.Keys(easings))
}

// ErrInvalidConfig is returned for configuration values which are out of
// range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that all fields have usable values.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig))
	}
	if !(c.Period > 0) {
		errs = append(errs, fmt.Errorf("period %g: %w", c.Period, ErrInvalidConfig))
	}
	if _, ok := easings[c.Easing]; !ok {
		errs = append(errs, fmt.Errorf("unknown easing %q: %w", c.Easing, ErrInvalidConfig))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frame count %d: %w", c.Frames, ErrInvalidConfig))
	}
	if !(c.FrameRate > 0) {
		errs = append(errs, fmt.Errorf("frame rate %g: %w", c.FrameRate, ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML configuration file.  Fields which are not set in
// the file keep their values from [DefaultConfig].  Unknown fields are an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	shade.Logger().Debug("loaded config", "path", path, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	return cfg, nil
}
