// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Name is the active theme name: dark, light, or auto.
	Name string

	// ==========================================================================
	// SHELL STYLES
	// ==========================================================================

	Banner    lipgloss.Style
	Prompt    lipgloss.Style
	InputText lipgloss.Style
	Echo      lipgloss.Style // the user's line replayed in the transcript

	// ==========================================================================
	// RESULT KIND STYLES
	// ==========================================================================

	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style

	// ==========================================================================
	// COMPLETION POPUP STYLES
	// ==========================================================================

	CompletionPopup    lipgloss.Style
	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
	CompletionDesc     lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND OVERLAY STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusDesc   lipgloss.Style
	GuideOverlay lipgloss.Style
	GuideTitle   lipgloss.Style
	SectionBadge lipgloss.Style
	Spinner      lipgloss.Style
	Timestamp    lipgloss.Style
}

// NewTheme builds a theme for the given name. "auto" follows the
// terminal's background; "dark" and "light" force it.
func NewTheme(name string) *Theme {
	isDark := termenv.HasDarkBackground()
	switch name {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
		Name:         name,
	}

	t.Banner = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.Prompt = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.InputText = lipgloss.NewStyle().Foreground(Text)
	t.Echo = lipgloss.NewStyle().Foreground(TextMuted)

	t.Success = lipgloss.NewStyle().Foreground(Text)
	t.Error = lipgloss.NewStyle().Foreground(Rose)
	t.Info = lipgloss.NewStyle().Foreground(Cyan)
	t.Warning = lipgloss.NewStyle().Foreground(Amber)

	t.CompletionPopup = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.CompletionItem = lipgloss.NewStyle().Foreground(Text)
	t.CompletionSelected = lipgloss.NewStyle().Foreground(Surface).Background(Purple).Bold(true)
	t.CompletionDesc = lipgloss.NewStyle().Foreground(TextMuted)

	t.StatusBar = lipgloss.NewStyle().Foreground(TextMuted)
	t.StatusKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.StatusDesc = lipgloss.NewStyle().Foreground(TextMuted)

	t.GuideOverlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Purple).
		Padding(1, 3)
	t.GuideTitle = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	t.SectionBadge = lipgloss.NewStyle().
		Foreground(Surface).
		Background(Green).
		Padding(0, 1).
		Bold(true)
	t.Spinner = lipgloss.NewStyle().Foreground(Cyan)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)

	return t
}

// KindStyle maps a result kind to its display style.
func (t *Theme) KindStyle(kind string) lipgloss.Style {
	switch kind {
	case "error":
		return t.Error
	case "info":
		return t.Info
	case "warning":
		return t.Warning
	default:
		return t.Success
	}
}
