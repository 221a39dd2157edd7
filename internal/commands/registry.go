// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"sort"
	"strings"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler executes a command. It receives the caller's context, the shared
// command Context, and the parsed arguments, and returns a Result. A
// non-nil error (or a panic) is converted by the dispatcher into an
// error-kind Result; handlers should normally report failures through the
// Result instead.
type Handler func(ctx context.Context, cc *Context, args []string) (Result, error)

// Command represents a terminal command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "projects")
	Name string

	// Aliases are alternative names (e.g., "proj")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g., "goto <section>")
	Usage string

	// Args defines the expected arguments
	Args []ArgDef

	// Validate optionally rejects an argument list before execution.
	// It runs after the ArgDef checks and must be a pure predicate.
	Validate func(args []string) error

	// Handler is the function that executes the command
	Handler Handler

	// Hidden commands don't appear in help or completion
	Hidden bool

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	// Name of the argument
	Name string

	// Required indicates if the argument must be provided
	Required bool

	// Type determines completion behavior
	Type ArgType

	// Description explains the argument
	Description string

	// Values for enum types
	Values []string

	// Completer for custom completion
	Completer func() []string
}

// ArgType indicates what kind of completion to provide.
type ArgType int

const (
	ArgTypeString  ArgType = iota // Free-form string
	ArgTypeEnum                   // One of predefined values
	ArgTypeSection                // Portfolio section name
	ArgTypeProject                // Project name from the dataset
	ArgTypeTheme                  // Theme name
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands. Names and aliases are
// case-folded on registration and lookup. It is built once at startup and
// read-only afterwards from the dispatcher's perspective.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command to the registry. Re-registering an existing name
// silently replaces the prior command, and a colliding alias is rebound to
// the new command: last registration wins. This mirrors the terminal being
// ported, which never signals duplicate registration.
func (r *Registry) Register(cmd *Command) {
	name := strings.ToLower(cmd.Name)
	r.commands[name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[strings.ToLower(alias)] = name
	}
}

// Resolve retrieves a command by name or alias, case-insensitively.
// Returns nil if nothing matches.
func (r *Registry) Resolve(nameOrAlias string) *Command {
	key := strings.ToLower(nameOrAlias)
	if cmd, ok := r.commands[key]; ok {
		return cmd
	}
	if name, ok := r.aliases[key]; ok {
		return r.commands[name]
	}
	return nil
}

// List returns all registered commands sorted by name.
func (r *Registry) List() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

// Names returns every registered name and alias. This is the candidate set
// for the typo suggester and for completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands)+len(r.aliases))
	for _, cmd := range r.List() {
		names = append(names, cmd.Name)
		names = append(names, cmd.Aliases...)
	}
	return names
}

// ByCategory returns visible commands grouped by category, for help
// display. Commands without a category land under "General".
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.List() {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}
