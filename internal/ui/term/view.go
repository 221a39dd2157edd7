// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full shell frame: banner, transcript viewport, prompt
// line, completion popup, and status bar, with the guide overlay on top
// when active.
func (m *Model) View() string {
	if !m.ready {
		return "starting..."
	}

	if m.showGuide {
		return m.renderGuide()
	}

	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	if m.transcriptShown {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderPromptLine())

	if m.completion.Visible {
		b.WriteString("\n")
		b.WriteString(m.renderCompletions())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

// chromeHeight is the vertical space everything but the transcript takes.
func (m *Model) chromeHeight() int {
	banner := strings.Count(m.renderBanner(), "\n") + 1
	// banner + prompt line + status bar + spacing
	return banner + 4
}

// =============================================================================
// BANNER
// =============================================================================

func (m *Model) renderBanner() string {
	runes := []rune(m.bannerText)
	shown := m.bannerShown
	if shown > len(runes) {
		shown = len(runes)
	}
	return m.theme.Banner.Render(string(runes[:shown]))
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshViewport re-renders the output log into the viewport. Called
// after every mutation of the log or the theme.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.viewport.Width
	if width < 20 {
		width = 20
	}

	var lines []string
	for _, entry := range m.outputLog.Entries() {
		text := wordwrap.String(entry.Text, width-2)
		if entry.Kind == "echo" {
			lines = append(lines, m.theme.Echo.Render(text))
			continue
		}
		lines = append(lines, m.theme.KindStyle(entry.Kind).Render(text))
	}

	if m.pending {
		lines = append(lines, m.spin.View()+" "+m.theme.Timestamp.Render("working..."))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

// =============================================================================
// PROMPT
// =============================================================================

func (m *Model) renderPromptLine() string {
	prompt := m.theme.Prompt.Render(m.cfg.Prompt)
	if m.pending {
		return prompt + " " + m.spin.View()
	}
	return prompt + " " + m.input.View()
}

// =============================================================================
// COMPLETION POPUP
// =============================================================================

const maxVisibleCompletions = 6

func (m *Model) renderCompletions() string {
	var rows []string
	for i, c := range m.completion.Completions {
		if i >= maxVisibleCompletions {
			remaining := len(m.completion.Completions) - maxVisibleCompletions
			rows = append(rows, m.theme.CompletionDesc.Render(fmt.Sprintf("... and %d more", remaining)))
			break
		}

		name := util.PadRight(c.Display, 18)
		desc := ""
		if c.Description != "" {
			desc = "  " + m.theme.CompletionDesc.Render(util.TruncateWidth(c.Description, 40))
		}

		if i == m.completion.Selected {
			rows = append(rows, m.theme.CompletionSelected.Render(name)+desc)
		} else {
			rows = append(rows, m.theme.CompletionItem.Render(name)+desc)
		}
	}
	return m.theme.CompletionPopup.Render(strings.Join(rows, "\n"))
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m *Model) renderStatusBar() string {
	badge := m.theme.SectionBadge.Render(m.currentSection)

	hints := []string{
		m.theme.StatusKey.Render("tab") + m.theme.StatusDesc.Render(" complete"),
		m.theme.StatusKey.Render("↑↓") + m.theme.StatusDesc.Render(" history"),
		m.theme.StatusKey.Render("^t") + m.theme.StatusDesc.Render(" transcript"),
		m.theme.StatusKey.Render("^c") + m.theme.StatusDesc.Render(" quit"),
	}

	bar := badge + "  " + strings.Join(hints, "  ")
	return m.theme.StatusBar.MaxWidth(m.width).Render(bar)
}

// =============================================================================
// GUIDE OVERLAY
// =============================================================================

func (m *Model) renderGuide() string {
	title := m.theme.GuideTitle.Render("Welcome")

	body := strings.Join([]string{
		title,
		"",
		"This site is a terminal. Type commands to explore it.",
		"",
		"  help            list every command",
		"  about           who I am",
		"  projects        what I've built",
		"  goto <section>  jump to a section",
		"  guide           show this again",
		"",
		m.theme.StatusDesc.Render("press any key to start"),
	}, "\n")

	box := m.theme.GuideOverlay.Render(body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
