// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"

	"github.com/jeranaias/termfolio/internal/history"
	"github.com/jeranaias/termfolio/internal/portfolio"
)

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Sender delivers a visitor message to the site owner. Implemented by
// internal/mailer; declared here so handlers don't depend on transport.
type Sender interface {
	Send(ctx context.Context, from, message string) error
}

// Context provides access to application state for command handlers.
// It follows the dependency injection pattern: the hosting shell owns one
// Context per session and passes it to the dispatcher by reference.
//
// All fields are optional and may be nil - handlers must check before use
// and degrade to an informative error Result when a collaborator is
// missing. The dispatcher reads the Context but mutates nothing; history
// is appended by the shell after each dispatch.
type Context struct {
	// Portfolio is the static read-only dataset rendered by commands.
	Portfolio *portfolio.Portfolio

	// Registry backs introspective commands like "help".
	Registry *Registry

	// CommandHistory is the session's typed-command log, owned by the
	// shell. Read by the "history" command.
	CommandHistory *history.CommandHistory

	// Navigate jumps the UI to a portfolio section. Nil in plain REPL
	// mode, where goto prints the section instead.
	Navigate func(section string) error

	// SetTheme switches the active color theme.
	SetTheme func(name string) error

	// ShowGuide surfaces the onboarding guide overlay.
	ShowGuide func()

	// Quit asks the hosting shell to exit.
	Quit func()

	// Mailer sends visitor messages. Nil when no webhook is configured.
	Mailer Sender

	// Version is the build version shown by the banner.
	Version string
}
