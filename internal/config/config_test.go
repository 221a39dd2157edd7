// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.History.CommandCap != 50 {
		t.Errorf("CommandCap = %d, want 50", cfg.History.CommandCap)
	}
	if cfg.History.OutputCap != 100 {
		t.Errorf("OutputCap = %d, want 100", cfg.History.OutputCap)
	}
	if cfg.Contact.WebhookURL != "" {
		t.Errorf("WebhookURL = %q, want empty (send disabled)", cfg.Contact.WebhookURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// =============================================================================
// FILE LOADING
// =============================================================================

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
theme = "dark"
prompt = "visitor$"

[history]
command_cap = 20
output_cap = 40

[contact]
webhook_url = "https://example.com/hook"
cooldown_secs = 30

[ui]
typewriter_ms = 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFrom(cfg, path); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.Prompt != "visitor$" {
		t.Errorf("Prompt = %q, want visitor$", cfg.Prompt)
	}
	if cfg.History.CommandCap != 20 || cfg.History.OutputCap != 40 {
		t.Errorf("History = %+v, want 20/40", cfg.History)
	}
	if cfg.Contact.CooldownSecs != 30 {
		t.Errorf("CooldownSecs = %d, want 30", cfg.Contact.CooldownSecs)
	}
	if cfg.UI.TypewriterMs != 0 {
		t.Errorf("TypewriterMs = %d, want 0", cfg.UI.TypewriterMs)
	}
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "light"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFrom(cfg, path); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.History.CommandCap != 50 {
		t.Errorf("CommandCap = %d, want default 50", cfg.History.CommandCap)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [broken`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFrom(Default(), path); err == nil {
		t.Error("LoadFrom should reject malformed TOML")
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TERMFOLIO_THEME", "light")
	t.Setenv("TERMFOLIO_PROMPT", "env$")
	t.Setenv("TERMFOLIO_WEBHOOK_URL", "https://env.example.com")
	t.Setenv("TERMFOLIO_COOLDOWN_SECS", "5")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.Prompt != "env$" {
		t.Errorf("Prompt = %q, want env$", cfg.Prompt)
	}
	if cfg.Contact.WebhookURL != "https://env.example.com" {
		t.Errorf("WebhookURL = %q", cfg.Contact.WebhookURL)
	}
	if cfg.Contact.CooldownSecs != 5 {
		t.Errorf("CooldownSecs = %d, want 5", cfg.Contact.CooldownSecs)
	}
}

func TestApplyEnvOverridesIgnoresBadNumber(t *testing.T) {
	t.Setenv("TERMFOLIO_COOLDOWN_SECS", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Contact.CooldownSecs != Default().Contact.CooldownSecs {
		t.Errorf("CooldownSecs = %d, want default kept", cfg.Contact.CooldownSecs)
	}
}

// =============================================================================
// CLAMP AND VALIDATE
// =============================================================================

func TestClamp(t *testing.T) {
	cfg := Default()
	cfg.History.CommandCap = -1
	cfg.History.OutputCap = 0
	cfg.Contact.CooldownSecs = -10
	cfg.UI.TypewriterMs = -3

	cfg.Clamp()

	if cfg.History.CommandCap != 50 || cfg.History.OutputCap != 100 {
		t.Errorf("History = %+v, want defaults restored", cfg.History)
	}
	if cfg.Contact.CooldownSecs != 0 {
		t.Errorf("CooldownSecs = %d, want 0", cfg.Contact.CooldownSecs)
	}
	if cfg.UI.TypewriterMs != 0 {
		t.Errorf("TypewriterMs = %d, want 0", cfg.UI.TypewriterMs)
	}
}

func TestValidate(t *testing.T) {
	for _, theme := range []string{"dark", "light", "auto"} {
		cfg := Default()
		cfg.Theme = theme
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%s): %v", theme, err)
		}
	}

	cfg := Default()
	cfg.Theme = "hotdog-stand"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject an unknown theme")
	}
}
