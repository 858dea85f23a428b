// Package config provides the editor options the layout and demo consume:
// tab size, soft-wrap width, and scroll margin. Options load from a TOML
// file with defaults for anything unset, and can be watched for changes.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Editor holds the options that affect movement resolution.
type Editor struct {
	// TabSize is the tab stop width in cells.
	TabSize int `toml:"tab_size"`

	// WrapColumn is the soft-wrap width in cells. Zero disables wrapping.
	WrapColumn int `toml:"wrap_column"`

	// ScrollOff is how many lines to keep between the cursor and the
	// viewport edges.
	ScrollOff int `toml:"scroll_off"`
}

// Config is the root configuration.
type Config struct {
	Editor Editor `toml:"editor"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			TabSize:    4,
			WrapColumn: 0,
			ScrollOff:  2,
		},
	}
}

// Load reads configuration from a TOML file, layered over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to usable ones.
func (c *Config) normalize() {
	if c.Editor.TabSize < 1 {
		c.Editor.TabSize = Default().Editor.TabSize
	}
	if c.Editor.WrapColumn < 0 {
		c.Editor.WrapColumn = 0
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = 0
	}
}
