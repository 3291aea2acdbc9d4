package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appDir     = "hanoi"
	configFile = "config.yaml"
	localFile  = "configs/hanoi.yaml"
	resultsDB  = "results.db"
	hostKey    = "host_key"
)

// Load reads the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/hanoi/config.yaml ->
// ./configs/hanoi.yaml -> embedded default. Only an explicit customPath
// that cannot be read or parsed is an error; broken files found by the
// search are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	if path, err := xdg.SearchConfigFile(filepath.Join(appDir, configFile)); err == nil {
		if cfg, err := readFile(path); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readFile(localFile); err == nil {
		return cfg, nil
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults, so partial files only
// override what they mention.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultDBPath returns the results database location under the XDG data
// directory, creating parent directories as needed.
func DefaultDBPath() string {
	path, err := xdg.DataFile(filepath.Join(appDir, resultsDB))
	if err != nil {
		return filepath.Join(xdg.DataHome, appDir, resultsDB)
	}
	return path
}

// DefaultHostKeyPath returns where the SSH server keeps its host key.
func DefaultHostKeyPath() string {
	path, err := xdg.DataFile(filepath.Join(appDir, hostKey))
	if err != nil {
		return filepath.Join(xdg.DataHome, appDir, hostKey)
	}
	return path
}
