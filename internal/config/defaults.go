package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

//go:embed defaults/hanoi.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Settings: core.SettingsBounds{
			Poles: core.Bounds{Min: 3, Max: 7, Default: 3},
			Disks: core.Bounds{Min: 1, Max: 12, Default: 3},
		},
		Display: DisplayConfig{
			Padding:    4,
			Pole:       "|",
			Marker:     "@",
			Colors:     true,
			Fullscreen: true,
		},
	}
}
