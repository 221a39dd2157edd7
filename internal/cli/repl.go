// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode REPL for the termfolio CLI.
//
// This is the plain surface used when the session is piped, when the
// terminal cannot host the full-screen shell, or when --plain is given.
// It shares the dispatcher, registry, and command history with the TUI;
// only the presentation differs. The REPL is single-threaded, so the
// Context callbacks (Navigate, SetTheme, ShowGuide, Quit) are safe here.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/history"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)
)

// kindStyle maps a result kind to its line-mode style. Success renders
// unstyled so piped output stays clean.
func kindStyle(kind commands.Kind) lipgloss.Style {
	switch kind {
	case commands.KindError:
		return errorStyle
	case commands.KindInfo:
		return infoStyle
	case commands.KindWarning:
		return warningStyle
	default:
		return lipgloss.NewStyle()
	}
}

// =============================================================================
// REPL
// =============================================================================

// REPL reads command lines with history and line editing, dispatches
// them, and prints the results.
type REPL struct {
	dispatcher *commands.Dispatcher
	cctx       *commands.Context
	cmdHistory *history.CommandHistory

	line        *liner.State
	historyFile string
	prompt      string
	version     string

	quitting bool
}

// Options wires the REPL's collaborators. History may be nil for a
// memory-only session.
type Options struct {
	Config     *config.Config
	Dispatcher *commands.Dispatcher
	Context    *commands.Context
	History    *history.CommandHistory
	Version    string
}

// NewREPL creates a line-mode REPL and installs the shell callbacks on
// the command context.
func NewREPL(opts Options) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}

	r := &REPL{
		dispatcher:  opts.Dispatcher,
		cctx:        opts.Context,
		cmdHistory:  opts.History,
		line:        line,
		historyFile: filepath.Join(dir, "repl_history"),
		prompt:      opts.Config.Prompt + " ",
		version:     opts.Version,
	}

	r.installCallbacks()
	r.loadHistory()
	r.seedCompletion()

	return r
}

// installCallbacks gives the handlers their shell hooks. Navigation and
// theme switches have no screen to act on in line mode, so they print.
func (r *REPL) installCallbacks() {
	r.cctx.Navigate = func(section string) error {
		fmt.Println(infoStyle.Render("-- " + section + " --"))
		return nil
	}
	r.cctx.SetTheme = func(name string) error {
		fmt.Println(infoStyle.Render("theme saved: " + name + " (takes effect in the full-screen shell)"))
		return nil
	}
	r.cctx.ShowGuide = func() {
		fmt.Println(r.guideText())
	}
	r.cctx.Quit = func() {
		r.quitting = true
	}
}

func (r *REPL) guideText() string {
	return strings.Join([]string{
		welcomeStyle.Render("Welcome."),
		"This site is a terminal. Type commands to explore it.",
		"",
		"  help            list every command",
		"  about           who I am",
		"  projects        what I've built",
		"  goto <section>  jump to a section",
	}, "\n")
}

// loadHistory primes liner and the shared history from disk. The shared
// history restores itself from the snapshot store; liner keeps its own
// file so arrow-key recall works across line-mode sessions too.
func (r *REPL) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory() {
	if f, err := os.Create(r.historyFile); err == nil {
		r.line.WriteHistory(f)
		f.Close()
	}
}

// seedCompletion wires tab completion over the registry.
func (r *REPL) seedCompletion() {
	completer := commands.NewCompleter(r.dispatcher.Registry())
	if r.cctx.Portfolio != nil {
		p := r.cctx.Portfolio
		completer.SectionsFn = func() []string { return p.Sections }
		completer.ProjectsFn = func() []string { return p.ProjectNames() }
	}

	r.line.SetCompleter(func(input string) []string {
		var out []string
		for _, c := range completer.Complete(input, len(input)) {
			// liner replaces the whole line, so rebuild it.
			idx := strings.LastIndex(input, " ")
			if idx < 0 {
				out = append(out, c.Value)
			} else {
				out = append(out, input[:idx+1]+c.Value)
			}
		}
		return out
	})
}

// =============================================================================
// RUN LOOP
// =============================================================================

// Run reads and dispatches lines until EOF or an exit command.
func (r *REPL) Run(ctx context.Context) error {
	defer r.close()

	if r.cctx.Portfolio != nil {
		fmt.Println(welcomeStyle.Render(commands.Banner(r.cctx.Portfolio.Profile.Name, r.version)))
	}
	fmt.Println(infoStyle.Render("Type 'help' to see what's available, 'exit' to leave."))
	fmt.Println()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := r.line.Prompt(promptStyle.Render(r.prompt))
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl+C clears the line, it does not end the session.
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		r.dispatch(ctx, raw)
		if r.quitting {
			return nil
		}
	}
}

// dispatch runs one line and prints the result.
func (r *REPL) dispatch(ctx context.Context, raw string) {
	line := commands.Tokenize(raw)
	if line.Command != "" {
		r.line.AppendHistory(raw)
		if r.cmdHistory != nil {
			r.cmdHistory.Append(raw)
		}
	}

	res := r.dispatcher.Execute(ctx, r.cctx, raw)
	if res.Text == "" {
		return
	}
	fmt.Println(kindStyle(res.Kind).Render(res.Text))
}

func (r *REPL) close() {
	r.saveHistory()
	r.line.Close()
}
