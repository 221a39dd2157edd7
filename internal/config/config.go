// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for termfolio.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides:
//   - ~/.termfolio/config.toml
//   - TERMFOLIO_* environment variables
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete termfolio configuration.
type Config struct {
	// Theme is the startup color theme: "dark", "light", or "auto".
	Theme string `toml:"theme"`

	// Prompt is the shell prompt prefix.
	Prompt string `toml:"prompt"`

	// History bounds the two session logs.
	History HistoryConfig `toml:"history"`

	// Contact configures the visitor message webhook.
	Contact ContactConfig `toml:"contact"`

	// UI tunes shell presentation.
	UI UIConfig `toml:"ui"`
}

// HistoryConfig bounds the command and output logs.
type HistoryConfig struct {
	// CommandCap is the maximum retained typed commands.
	CommandCap int `toml:"command_cap"`

	// OutputCap is the maximum retained output entries.
	OutputCap int `toml:"output_cap"`
}

// ContactConfig configures visitor message delivery.
type ContactConfig struct {
	// WebhookURL receives visitor messages as JSON POSTs.
	// Empty disables the send command.
	WebhookURL string `toml:"webhook_url"`

	// CooldownSecs is the minimum gap between sends. The cooldown is
	// in-memory only and resets on restart.
	CooldownSecs int `toml:"cooldown_secs"`
}

// UIConfig tunes shell presentation.
type UIConfig struct {
	// TypewriterMs is the per-character banner reveal delay.
	// 0 disables the effect.
	TypewriterMs int `toml:"typewriter_ms"`

	// ShowGuideOnFirstVisit opens the guide for new visitors.
	ShowGuideOnFirstVisit bool `toml:"show_guide_on_first_visit"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:  "auto",
		Prompt: "guest@termfolio:~$",
		History: HistoryConfig{
			CommandCap: 50,
			OutputCap:  100,
		},
		Contact: ContactConfig{
			CooldownSecs: 60,
		},
		UI: UIConfig{
			TypewriterMs:          12,
			ShowGuideOnFirstVisit: true,
		},
	}
}

// Dir returns the configuration directory, ~/.termfolio.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locate home directory: %w", err)
	}
	return filepath.Join(home, ".termfolio"), nil
}

// Path returns the configuration file location.
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

// Load reads the config file if present, applies environment overrides,
// and validates. A missing file is not an error; defaults are used.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadFrom(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom decodes TOML at path over the given config.
func LoadFrom(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies TERMFOLIO_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("TERMFOLIO_THEME"); theme != "" {
		c.Theme = theme
	}
	if prompt := os.Getenv("TERMFOLIO_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}
	if url := os.Getenv("TERMFOLIO_WEBHOOK_URL"); url != "" {
		c.Contact.WebhookURL = url
	}
	if secs := os.Getenv("TERMFOLIO_COOLDOWN_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil {
			c.Contact.CooldownSecs = n
		}
	}
}

// Clamp forces out-of-range values back to usable bounds rather than
// failing startup for a cosmetic setting.
func (c *Config) Clamp() {
	if c.History.CommandCap <= 0 {
		c.History.CommandCap = Default().History.CommandCap
	}
	if c.History.OutputCap <= 0 {
		c.History.OutputCap = Default().History.OutputCap
	}
	if c.Contact.CooldownSecs < 0 {
		c.Contact.CooldownSecs = 0
	}
	if c.UI.TypewriterMs < 0 {
		c.UI.TypewriterMs = 0
	}
}

// Validate rejects configurations that cannot work at all.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("config: unknown theme %q (want dark, light, or auto)", c.Theme)
	}
	return nil
}

// Save writes the config as TOML to the default location.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
