// Package config loads the YAML configuration: menu bounds, board glyphs
// and display options.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// Hard limits on what the renderer can draw.
const (
	MinPoles = 3
	MaxPoles = 26 // poles are named A..Z
	MaxDisks = 20
)

// Config is the complete game configuration.
type Config struct {
	Settings core.SettingsBounds `yaml:"settings"`
	Display  DisplayConfig       `yaml:"display"`
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Padding    int    `yaml:"padding"`
	Pole       string `yaml:"pole"`
	Marker     string `yaml:"marker"`
	Colors     bool   `yaml:"colors"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// InvalidConfigError reports a configuration value that cannot be used.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the bounds and glyphs. Defaults outside their bounds
// are clamped rather than rejected.
func (c *Config) Validate() error {
	p, d := &c.Settings.Poles, &c.Settings.Disks

	switch {
	case p.Min < MinPoles:
		return &InvalidConfigError{"settings.poles.min", fmt.Sprintf("must be at least %d", MinPoles)}
	case p.Max < p.Min:
		return &InvalidConfigError{"settings.poles.max", "must not be below min"}
	case p.Max > MaxPoles:
		return &InvalidConfigError{"settings.poles.max", fmt.Sprintf("must be at most %d", MaxPoles)}
	case d.Min < 1:
		return &InvalidConfigError{"settings.disks.min", "must be at least 1"}
	case d.Max < d.Min:
		return &InvalidConfigError{"settings.disks.max", "must not be below min"}
	case d.Max > MaxDisks:
		return &InvalidConfigError{"settings.disks.max", fmt.Sprintf("must be at most %d", MaxDisks)}
	case c.Display.Padding < hanoi.MinPadding:
		return &InvalidConfigError{"display.padding", fmt.Sprintf("must be at least %d", hanoi.MinPadding)}
	}

	for field, glyph := range map[string]string{"display.pole": c.Display.Pole, "display.marker": c.Display.Marker} {
		if utf8.RuneCountInString(glyph) != 1 {
			return &InvalidConfigError{field, fmt.Sprintf("%q must be a single character", glyph)}
		}
		if r, _ := utf8.DecodeRuneInString(glyph); r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfigError{field, "control characters are not allowed"}
		}
	}

	p.Default = p.Clamp(p.Default)
	d.Default = d.Clamp(d.Default)
	return nil
}

// Style converts the display options to a board style.
func (c Config) Style() hanoi.Style {
	style := hanoi.DefaultStyle()
	style.Padding = c.Display.Padding
	style.Colors = c.Display.Colors
	if r, _ := utf8.DecodeRuneInString(c.Display.Pole); r != utf8.RuneError {
		style.Pole = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Display.Marker); r != utf8.RuneError {
		style.Marker = r
	}
	return style
}
