// Package config loads optional defaults from the licht configuration
// file. Flags always take precedence; the file only fills in what the
// command line leaves unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the file-supplied defaults. Zero values mean "not set".
type Config struct {
	// MinBrightness is the default clamp floor.
	MinBrightness int `toml:"min_brightness"`

	// Stepping names the default mode: set, linear, geometric,
	// parabolic, or blend.
	Stepping string `toml:"stepping"`

	// Parabolic configures the parabolic curve.
	Parabolic Parabolic `toml:"parabolic"`

	// Blend is the default blend parameter triple, e.g. "(0.75,1.8,2.2)".
	Blend string `toml:"blend"`
}

// Parabolic holds the parabolic curve defaults.
type Parabolic struct {
	Exponent float64 `toml:"exponent"`
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/licht/config.toml, falling back to ~/.config.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "licht", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "licht", "config.toml")
}

// Load reads the file at path. A missing file is not an error and yields
// the zero Config; a malformed file is.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
