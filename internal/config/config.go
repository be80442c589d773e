// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads diagram settings for the phasor commands.
//
// Files are JSON; comments are allowed:
//
//	{
//	    // 400V network, balanced load
//	    "width": 800, "height": 600,
//	    "voltage": [230, 231, 229],
//	    "current": [5, 4.8, 5.1],
//	    "style": {"color": "#1f4e79", "stroke_width": 3}
//	}
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/sauerbraten/jsonfile"

	"github.com/gogpu/phasor"
)

// Config is the full set of command settings.
type Config struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Voltage [3]float64 `json:"voltage"`
	Current [3]float64 `json:"current"`
	Target  string     `json:"target"`
	Output  string     `json:"output"`
	Style   Style      `json:"style"`
}

// Style overrides the default diagram style. Zero fields keep defaults.
type Style struct {
	Color        string  `json:"color"`
	StrokeWidth  float64 `json:"stroke_width"`
	TextSize     float64 `json:"text_size"`
	MarkerRadius float64 `json:"marker_radius"`
}

// Errors returned by Validate and ParseTriple.
var (
	ErrInvalidSize   = errors.New("config: width and height must be positive")
	ErrInvalidTriple = errors.New("config: want three comma-separated numbers")
)

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:  800,
		Height: 600,
		Target: "png",
		Output: "phasor.png",
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if err := jsonfile.ParseFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return c, nil
}

// Voltages returns the voltage magnitudes.
func (c Config) Voltages() phasor.Triple {
	return phasor.T(c.Voltage[0], c.Voltage[1], c.Voltage[2])
}

// Currents returns the current magnitudes.
func (c Config) Currents() phasor.Triple {
	return phasor.T(c.Current[0], c.Current[1], c.Current[2])
}

// Validate checks the size and rejects non-finite magnitudes.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if err := phasor.CheckFinite(c.Voltages()); err != nil {
		return fmt.Errorf("config: voltage: %w", err)
	}
	if err := phasor.CheckFinite(c.Currents()); err != nil {
		return fmt.Errorf("config: current: %w", err)
	}
	return nil
}

// RenderOptions converts the style overrides to render options.
func (c Config) RenderOptions() []phasor.Option {
	var opts []phasor.Option
	s := c.Style
	if s.Color != "" {
		opts = append(opts, phasor.WithColor(gg.Hex(s.Color)))
	}
	if s.StrokeWidth > 0 {
		opts = append(opts, phasor.WithStrokeWidth(s.StrokeWidth))
	}
	if s.TextSize > 0 {
		opts = append(opts, phasor.WithTextSize(s.TextSize))
	}
	if s.MarkerRadius > 0 {
		opts = append(opts, phasor.WithMarkerRadius(s.MarkerRadius))
	}
	return opts
}

// Merge overrides cfg with the flags of fs that it knows: -width,
// -height, -output, -target, -v and -i. Flags set on the command line
// always win. Flags left at their default are applied too when
// withDefaults is true, which is how a command without a config file takes
// its settings. Empty triples are skipped.
func Merge(fs *flag.FlagSet, cfg Config, withDefaults bool) (Config, error) {
	var err error
	visit := fs.Visit
	if withDefaults {
		visit = fs.VisitAll
	}
	visit(func(f *flag.Flag) {
		if err == nil {
			err = cfg.apply(f.Name, f.Value.String())
		}
	})
	return cfg, err
}

func (c *Config) apply(name, value string) error {
	var err error
	switch name {
	case "width":
		c.Width, err = strconv.Atoi(value)
	case "height":
		c.Height, err = strconv.Atoi(value)
	case "output":
		c.Output = value
	case "target":
		c.Target = value
	case "v":
		if value != "" {
			c.Voltage, err = ParseTriple(value)
		}
	case "i":
		if value != "" {
			c.Current, err = ParseTriple(value)
		}
	}
	if err != nil {
		return fmt.Errorf("-%s: %w", name, err)
	}
	return nil
}

// ParseTriple parses "r,y,b" into three magnitudes.
func ParseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("%w: %q", ErrInvalidTriple, s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("%w: %q: %w", ErrInvalidTriple, s, err)
		}
		out[i] = v
	}
	return out, nil
}
