// SPDX-License-Identifier: MIT
// File: config.go
// Role: persistent CLI defaults loaded from an optional TOML file (naming
// a subcommand overrides the default render mode; no flag overrides the
// limits) — grounded on pkg/deps/rust/cargo.go's
// toml.Unmarshal struct-tag convention.
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig holds defaults read from a TOML config file. Zero values mean
// "use the compiled-in default" (see distmatrix.MaxTaxa / distmatrix.InputMax).
type fileConfig struct {
	MaxTaxa     int    `toml:"max_taxa"`
	InputMax    int    `toml:"input_max"`
	DefaultMode string `toml:"default_render_mode"`
}

// loadConfig reads path as TOML. A missing file is not an error — it
// simply yields zero-value defaults, since a config file is optional.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("njtree: read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("njtree: parse config %s: %w", path, err)
	}

	return cfg, nil
}
