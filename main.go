// termfolio - A portfolio you explore from a terminal prompt.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/cli"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/history"
	"github.com/jeranaias/termfolio/internal/mailer"
	"github.com/jeranaias/termfolio/internal/portfolio"
	"github.com/jeranaias/termfolio/internal/state"
	"github.com/jeranaias/termfolio/internal/ui/term"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	plain := flag.Bool("plain", false, "use the line-mode REPL instead of the full-screen shell")
	memOnly := flag.Bool("no-persist", false, "keep history and state in memory only")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("termfolio %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not take the site down.
		log.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}

	p, err := portfolio.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: portfolio data: %v\n", err)
		os.Exit(1)
	}

	var store *state.Store
	if *memOnly {
		store = state.OpenMemory()
	} else {
		store = state.Open(state.DefaultPath())
	}
	defer store.Close()

	registry := commands.NewRegistry()
	commands.RegisterBuiltins(registry)
	dispatcher := commands.NewDispatcher(registry)

	cctx := &commands.Context{
		Portfolio: p,
		Registry:  registry,
		Version:   Version,
	}
	if cfg.Contact.WebhookURL != "" {
		cooldown := time.Duration(cfg.Contact.CooldownSecs) * time.Second
		cctx.Mailer = mailer.New(cfg.Contact.WebhookURL, cooldown)
	}

	if *plain || !cli.Interactive() {
		runREPL(cfg, dispatcher, cctx, store)
		return
	}
	runShell(cfg, dispatcher, cctx, store)
}

// runShell starts the full-screen terminal shell.
func runShell(cfg *config.Config, dispatcher *commands.Dispatcher, cctx *commands.Context, store *state.Store) {
	m := term.New(term.Options{
		Config:     cfg,
		Dispatcher: dispatcher,
		Context:    cctx,
		Store:      store,
		Version:    Version,
	})

	prog := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Hot-reload config edits into the running shell.
	if path, err := config.Path(); err == nil {
		watcher, werr := config.Watch(path, func(next *config.Config) {
			prog.Send(term.ConfigReloadedMsg{Config: next})
		})
		if werr == nil {
			defer watcher.Close()
		} else {
			log.Printf("config: watch disabled: %v", werr)
		}
	}

	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running termfolio: %v\n", err)
		os.Exit(1)
	}
}

// runREPL starts the line-mode surface for piped or plain sessions.
func runREPL(cfg *config.Config, dispatcher *commands.Dispatcher, cctx *commands.Context, store *state.Store) {
	cmdHistory := history.NewCommandHistory(cfg.History.CommandCap, store)
	cctx.CommandHistory = cmdHistory

	repl := cli.NewREPL(cli.Options{
		Config:     cfg,
		Dispatcher: dispatcher,
		Context:    cctx,
		History:    cmdHistory,
		Version:    Version,
	})

	if err := repl.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
