// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term implements the interactive terminal shell: a Bubble Tea
// model that owns the command context, the bounded histories, and the
// presentation state, and drives the stateless dispatcher.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/history"
	"github.com/jeranaias/termfolio/internal/state"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the terminal shell. One command executes at a time: input is
// disabled while a command is pending, so submission order and completion
// order coincide.
type Model struct {
	cfg        *config.Config
	theme      *styles.Theme
	dispatcher *commands.Dispatcher
	completer  *commands.Completer
	cctx       *commands.Context

	store      *state.Store
	cmdHistory *history.CommandHistory
	outputLog  *history.OutputLog

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	completion *commands.CompletionState

	// histCursor indexes cmdHistory while browsing with the arrow keys;
	// -1 means live input.
	histCursor int
	histDraft  string

	// pending disables input while a command runs.
	pending bool

	// Banner typewriter effect.
	bannerText  string
	bannerShown int
	typing      bool

	// Section and guide state, mirrored to the snapshot store.
	currentSection  string
	visited         map[string]bool
	guideDismissed  bool
	showGuide       bool
	transcriptShown bool

	width  int
	height int
	ready  bool
}

// Options wires the shell's collaborators.
type Options struct {
	Config     *config.Config
	Dispatcher *commands.Dispatcher
	Context    *commands.Context
	Store      *state.Store
	Version    string
}

// New builds the shell model, restoring persisted UI state.
func New(opts Options) *Model {
	cfg := opts.Config

	theme := styles.NewTheme(cfg.Theme)

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "help"
	input.CharLimit = 256
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	m := &Model{
		cfg:        cfg,
		theme:      theme,
		dispatcher: opts.Dispatcher,
		completer:  commands.NewCompleter(opts.Dispatcher.Registry()),
		cctx:       opts.Context,
		store:      opts.Store,
		input:      input,
		spin:       spin,
		completion: commands.NewCompletionState(),
		histCursor: -1,
		visited:    make(map[string]bool),

		currentSection:  "home",
		transcriptShown: true,
	}

	m.cmdHistory = history.NewCommandHistory(cfg.History.CommandCap, opts.Store)
	m.outputLog = history.NewOutputLog(cfg.History.OutputCap, opts.Store)
	m.cctx.CommandHistory = m.cmdHistory

	if opts.Context.Portfolio != nil {
		p := opts.Context.Portfolio
		m.completer.SectionsFn = func() []string { return p.Sections }
		m.completer.ProjectsFn = func() []string { return p.ProjectNames() }
		m.bannerText = commands.Banner(p.Profile.Name, opts.Version)
	} else {
		m.bannerText = commands.Banner("", opts.Version)
	}

	m.restoreState()

	if cfg.UI.TypewriterMs > 0 {
		m.typing = true
	} else {
		m.bannerShown = len([]rune(m.bannerText))
	}

	if cfg.UI.ShowGuideOnFirstVisit && !m.guideDismissed {
		m.showGuide = true
	}

	return m
}

// restoreState loads persisted UI toggles. Histories restore themselves.
func (m *Model) restoreState() {
	var visited []string
	if m.store.Load(state.KeyVisitedSections, &visited) {
		for _, s := range visited {
			m.visited[s] = true
		}
	}
	m.store.Load(state.KeyGuideDismissed, &m.guideDismissed)

	shown := true
	if m.store.Load(state.KeyTerminalVisible, &shown) {
		m.transcriptShown = shown
	}
}

func (m *Model) saveVisited() {
	visited := make([]string, 0, len(m.visited))
	for s := range m.visited {
		visited = append(visited, s)
	}
	m.store.Save(state.KeyVisitedSections, visited)
}

// Init starts the spinner and, when enabled, the banner typewriter.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if m.typing {
		cmds = append(cmds, typeTick(m.cfg.UI.TypewriterMs))
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// MESSAGES
// =============================================================================

// resultMsg delivers a finished dispatch back to the event loop.
type resultMsg struct {
	raw string
	res commands.Result
}

// ConfigReloadedMsg carries a freshly loaded config from the file
// watcher into the event loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// typeTickMsg advances the banner typewriter.
type typeTickMsg struct{}

func typeTick(ms int) tea.Cmd {
	return tea.Tick(time.Duration(ms)*time.Millisecond, func(time.Time) tea.Msg {
		return typeTickMsg{}
	})
}

// execCmd runs one dispatch off the event loop. The dispatcher is
// stateless and the Context callbacks used by the TUI are nil, so the
// handler only reads shared state; mutations arrive via the payload on
// resultMsg and are applied on the event loop.
func (m *Model) execCmd(raw string) tea.Cmd {
	dispatcher := m.dispatcher
	cctx := m.cctx
	return func() tea.Msg {
		res := dispatcher.Execute(context.Background(), cctx, raw)
		return resultMsg{raw: raw, res: res}
	}
}
