// SPDX-License-Identifier: Apache-2.0

// Package config loads the checker's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the on-disk configuration for the compatibility checker.
type Config struct {
	// DatasheetDir is the directory walked for component datasheets.
	DatasheetDir string `yaml:"datasheet_dir"`
	// Extensions lists the file extensions treated as datasheets.
	Extensions []string `yaml:"extensions"`
	// Verbose enables extraction and consolidation diagnostics.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DatasheetDir: "datasheets",
		Extensions:   []string{".txt"},
	}
}

// Load reads the configuration at path. An empty path or a missing file
// yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DatasheetDir == "" {
		cfg.DatasheetDir = Default().DatasheetDir
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = Default().Extensions
	}
	return cfg, nil
}
