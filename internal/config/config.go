// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for parley.
//
// Configuration is TOML at ~/.parley/config.toml, with built-in defaults and
// PARLEY_* environment variable overrides on top.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete parley configuration.
type Config struct {
	// Server holds relay connection settings.
	Server ServerConfig `toml:"server"`

	// Storage selects and locates the persistent store backend.
	Storage StorageConfig `toml:"storage"`

	// UI holds rendering preferences. DarkMode here is only the initial
	// default; once toggled, the persisted store value wins.
	UI UIConfig `toml:"ui"`
}

// ServerConfig holds relay connection settings.
type ServerConfig struct {
	// URL is the relay websocket endpoint (ws:// or wss://).
	URL string `toml:"url"`
}

// StorageConfig selects the store backend.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `toml:"backend"`
	// DataDir is where blobs (or the database file) live.
	// Default: ~/.parley/data
	DataDir string `toml:"data_dir"`
}

// UIConfig holds rendering preferences.
type UIConfig struct {
	// DarkMode is the initial theme when no preference is stored yet.
	DarkMode bool `toml:"dark_mode"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{URL: "ws://localhost:8080/chat"},
		Storage: StorageConfig{Backend: "file"},
		UI:      UIConfig{DarkMode: false},
	}
}

// Dir returns the parley configuration directory (~/.parley).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".parley"), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file if present, layers environment overrides on
// top, fills remaining defaults, and validates. A missing file is not an
// error; defaults apply.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit file path, used by tests and the
// --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides layers PARLEY_* environment variables over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PARLEY_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("PARLEY_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("PARLEY_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
}

// fillDefaults resolves values that need the environment, like the home
// directory.
func (c *Config) fillDefaults() error {
	if c.Storage.DataDir == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.Storage.DataDir = filepath.Join(dir, "data")
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("server url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("server url must use ws or wss, got %q", u.Scheme)
	}
	if c.Storage.Backend != "file" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("storage backend must be file or sqlite, got %q", c.Storage.Backend)
	}
	return nil
}
