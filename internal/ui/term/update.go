// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/history"
	"github.com/jeranaias/termfolio/internal/state"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the single mutation point for shell state. Dispatch results
// arrive here as messages, so history appends and payload handling always
// run on the event loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		return m.handleResult(msg)

	case typeTickMsg:
		return m.handleTypeTick()

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.theme = styles.NewTheme(msg.Config.Theme)
		m.spin.Style = m.theme.Spinner
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := msg.Height - m.chromeHeight()
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}

	m.input.Width = msg.Width - 4
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The guide overlay swallows every key until dismissed.
	if m.showGuide {
		m.dismissGuide()
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+t":
		m.transcriptShown = !m.transcriptShown
		m.store.Save(state.KeyTerminalVisible, m.transcriptShown)
		m.refreshViewport()
		return m, nil

	case "ctrl+l":
		m.outputLog.Clear()
		m.refreshViewport()
		return m, nil
	}

	if m.pending {
		// One command at a time. Scrolling stays live; typing does not.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		return m.submit()

	case "tab":
		m.acceptCompletion()
		return m, nil

	case "shift+tab":
		if m.completion.Visible {
			m.completion.Prev()
		}
		return m, nil

	case "up":
		if m.completion.Visible {
			m.completion.Prev()
			return m, nil
		}
		m.browseHistory(-1)
		return m, nil

	case "down":
		if m.completion.Visible {
			m.completion.Next()
			return m, nil
		}
		m.browseHistory(1)
		return m, nil

	case "esc":
		if m.completion.Visible {
			m.completion.Clear()
			return m, nil
		}
		m.input.SetValue("")
		m.histCursor = -1
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Any edit leaves history-browse mode and refreshes completions.
	m.histCursor = -1
	m.refreshCompletions()
	return m, cmd
}

// submit echoes the line, records it, and starts the dispatch.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.SetValue("")
	m.completion.Clear()
	m.histCursor = -1
	m.histDraft = ""

	line := commands.Tokenize(raw)

	// Echo what was typed, even when it is blank or bogus.
	if strings.TrimSpace(raw) != "" {
		m.outputLog.Append(history.NewOutputEntry(m.cfg.Prompt+" "+raw, "echo"))
	}

	// Only lines that name a command enter the recall history.
	if line.Command != "" {
		m.cmdHistory.Append(raw)
	}

	m.pending = true
	m.refreshViewport()
	return m, m.execCmd(raw)
}

// acceptCompletion inserts the selected completion, or cycles when the
// popup is already showing the same input.
func (m *Model) acceptCompletion() {
	if !m.completion.Visible {
		m.refreshCompletions()
		return
	}

	value := m.completion.Accept()
	if value == "" {
		return
	}

	input := m.input.Value()
	trailingSpace := strings.HasSuffix(input, " ")
	parts := strings.Fields(input)

	var rebuilt string
	switch {
	case len(parts) == 0 || (len(parts) == 1 && !trailingSpace):
		rebuilt = value + " "
	case trailingSpace:
		rebuilt = input + value + " "
	default:
		rebuilt = strings.Join(parts[:len(parts)-1], " ") + " " + value + " "
	}

	m.input.SetValue(rebuilt)
	m.input.CursorEnd()
	m.completion.Clear()
	m.refreshCompletions()
}

func (m *Model) refreshCompletions() {
	input := m.input.Value()
	if strings.TrimSpace(input) == "" {
		m.completion.Clear()
		return
	}
	completions := m.completer.Complete(input, len(input))
	if len(completions) == 0 {
		m.completion.Clear()
		return
	}
	m.completion.Update(input, completions)
}

// browseHistory steps through recorded command lines. dir is -1 for
// older, +1 for newer; stepping past the newest restores the draft.
func (m *Model) browseHistory(dir int) {
	lines := m.cmdHistory.Lines()
	if len(lines) == 0 {
		return
	}

	if m.histCursor == -1 {
		if dir > 0 {
			return
		}
		m.histDraft = m.input.Value()
		m.histCursor = len(lines) - 1
	} else {
		m.histCursor += dir
		if m.histCursor >= len(lines) {
			m.histCursor = -1
			m.input.SetValue(m.histDraft)
			m.input.CursorEnd()
			return
		}
		if m.histCursor < 0 {
			m.histCursor = 0
		}
	}

	m.input.SetValue(lines[m.histCursor])
	m.input.CursorEnd()
}

// =============================================================================
// RESULT HANDLING
// =============================================================================

// handleResult applies one finished dispatch: append the output, then act
// on any payload. Payloads are how handlers reach shell state without
// touching it from another goroutine.
func (m *Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	m.pending = false

	if msg.res.Text != "" {
		m.outputLog.Append(history.NewOutputEntry(msg.res.Text, string(msg.res.Kind)))
	}

	var cmds []tea.Cmd

	switch p := msg.res.Payload.(type) {
	case commands.ClearPayload:
		m.outputLog.Clear()

	case commands.SectionPayload:
		m.currentSection = p.Section
		if !m.visited[p.Section] {
			m.visited[p.Section] = true
			m.saveVisited()
		}

	case commands.ThemePayload:
		m.theme = styles.NewTheme(p.Name)
		m.spin.Style = m.theme.Spinner

	case commands.GuidePayload:
		m.showGuide = true

	case commands.QuitPayload:
		cmds = append(cmds, tea.Quit)
	}

	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, tea.Batch(cmds...)
}

func (m *Model) dismissGuide() {
	m.showGuide = false
	if !m.guideDismissed {
		m.guideDismissed = true
		m.store.Save(state.KeyGuideDismissed, true)
	}
}

// =============================================================================
// BANNER TYPEWRITER
// =============================================================================

func (m *Model) handleTypeTick() (tea.Model, tea.Cmd) {
	if !m.typing {
		return m, nil
	}

	// Reveal a few runes per tick so large banners finish quickly.
	m.bannerShown += 3
	if m.bannerShown >= len([]rune(m.bannerText)) {
		m.bannerShown = len([]rune(m.bannerText))
		m.typing = false
		return m, nil
	}
	return m, typeTick(m.cfg.UI.TypewriterMs)
}
