// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"cogentcore.org/glpicture/base/errors"
	"cogentcore.org/glpicture/math32"
	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml
var defaultConfig []byte

// Config has the window and graphics context settings.
type Config struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Width is the window width in screen coordinates.
	Width int `toml:"width"`

	// Height is the window height in screen coordinates.
	Height int `toml:"height"`

	// GLMajor is the major version of the requested OpenGL context.
	GLMajor int `toml:"gl_major"`

	// GLMinor is the minor version of the requested OpenGL context.
	GLMinor int `toml:"gl_minor"`

	// CoreProfile requests a core profile context.
	CoreProfile bool `toml:"core_profile"`

	// ForwardCompatible requests a forward-compatible context on macOS,
	// where a core profile context requires it.
	ForwardCompatible bool `toml:"forward_compatible"`

	// SwapInterval is the number of vertical syncs to wait for
	// when presenting a frame.
	SwapInterval int `toml:"swap_interval"`

	// ClearColor is the RGBA background color.
	ClearColor [4]float32 `toml:"clear_color"`
}

// DefaultConfig returns the default config.
func DefaultConfig() *Config {
	return errors.Must1(ReadConfig(defaultConfig))
}

// ReadConfig decodes a config from the given TOML data.
// Unknown keys are an error.
func ReadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("gpu: reading config: %w", err)
	}
	return cfg, nil
}

// Size returns the window size.
func (cfg *Config) Size() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}

// Validate checks that the window size is positive and
// clamps the clear color components into [0, 1].
// A NaN clear color component is an error.
func (cfg *Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("gpu: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	for i, c := range cfg.ClearColor {
		if math32.IsNaN(c) {
			return fmt.Errorf("gpu: clear color component %d is NaN", i)
		}
		cfg.ClearColor[i] = math32.Clamp(c, 0, 1)
	}
	return nil
}
