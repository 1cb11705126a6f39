// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// developer console.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. File location: ~/.devconsole/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config is the complete devconsole configuration.
type Config struct {
	// Prompt is the input prompt shown by the hosts.
	Prompt string `toml:"prompt"`

	// Theme selects the color theme: "dark", "light" or "auto".
	Theme string `toml:"theme"`

	// DevBuilds enables registration of dev-only commands.
	DevBuilds bool `toml:"dev_builds"`

	// HistorySize is the in-console history ring capacity.
	HistorySize int `toml:"history_size"`

	// LogCapacity is the number of retained console log lines.
	LogCapacity int `toml:"log_capacity"`

	// SaveHistory persists REPL input history under the config dir.
	SaveHistory bool `toml:"save_history"`

	// Bindings are key bindings applied at startup, key name to raw
	// command string.
	Bindings map[string]string `toml:"bindings"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Prompt:      "> ",
		Theme:       "auto",
		DevBuilds:   false,
		HistorySize: 10,
		LogCapacity: 500,
		SaveHistory: true,
		Bindings:    map[string]string{},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the devconsole configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".devconsole"), nil
}

// ConfigPath returns the path of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the path of the REPL history file.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// EnsureConfigDir creates the configuration directory if missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file (if present), applies environment
// overrides and validates. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path. A missing
// file is not an error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults replaces zero values that would break the console.
func (c *Config) fillDefaults() {
	if c.Prompt == "" {
		c.Prompt = "> "
	}
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.HistorySize <= 0 {
		c.HistorySize = 10
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = 500
	}
	if c.Bindings == nil {
		c.Bindings = map[string]string{}
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variables on top of file values:
//
//   - DEVCONSOLE_PROMPT: overrides prompt
//   - DEVCONSOLE_THEME: overrides theme
//   - DEVCONSOLE_DEV: "1"/"true" enables dev builds
//   - DEVCONSOLE_LOG_CAPACITY: overrides log_capacity
func (c *Config) ApplyEnvOverrides() {
	if prompt := os.Getenv("DEVCONSOLE_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}
	if theme := os.Getenv("DEVCONSOLE_THEME"); theme != "" {
		c.Theme = theme
	}
	if dev := os.Getenv("DEVCONSOLE_DEV"); dev != "" {
		c.DevBuilds = dev == "1" || strings.EqualFold(dev, "true")
	}
	if capacity := os.Getenv("DEVCONSOLE_LOG_CAPACITY"); capacity != "" {
		if n, err := strconv.Atoi(capacity); err == nil && n > 0 {
			c.LogCapacity = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the console cannot use.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("invalid theme %q (want dark, light or auto)", c.Theme)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be at least 1, got %d", c.HistorySize)
	}
	if c.LogCapacity < 1 {
		return fmt.Errorf("log_capacity must be at least 1, got %d", c.LogCapacity)
	}
	for key, command := range c.Bindings {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(command) == "" {
			return fmt.Errorf("binding %q -> %q: key and command must be non-empty", key, command)
		}
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default path with owner-only
// permissions.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration as TOML to an explicit path.
func SaveToPath(cfg *Config, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
