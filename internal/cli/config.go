package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// configFile is looked up in the working directory when --config is not set.
const configFile = "graphx.toml"

// Config holds CLI defaults loadable from a TOML file.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig selects how the render command draws graphs by default.
type RenderConfig struct {
	// Layout is the Graphviz engine: dot, neato, circo, fdp, ...
	Layout string `toml:"layout"`

	// Format is the output format: svg or png.
	Format string `toml:"format"`
}

// defaultConfig returns the built-in defaults used when no file exists.
func defaultConfig() Config {
	return Config{Render: RenderConfig{Layout: "dot", Format: "svg"}}
}

// loadConfig reads TOML configuration from path. An empty path falls
// back to graphx.toml in the working directory; a missing file in
// either case just yields the defaults, while a present-but-broken
// file is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configFile
	}

	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Render.Layout == "" {
		cfg.Render.Layout = "dot"
	}
	if cfg.Render.Format == "" {
		cfg.Render.Format = "svg"
	}

	return cfg, nil
}
