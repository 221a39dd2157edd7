// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"strings"
)

// =============================================================================
// RESULT
// =============================================================================

// Kind classifies a dispatch result. Callers may rely on exhaustiveness
// over these four values; no other kind is ever produced.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Result is the structured outcome of dispatching one input line.
type Result struct {
	// OK reports whether the command completed successfully.
	OK bool

	// Text is the display output.
	Text string

	// Kind is the severity of the result.
	Kind Kind

	// Payload optionally carries structured data for the shell
	// (e.g., a section name the UI should scroll to).
	Payload any
}

// Convenience constructors used throughout the handlers.

func Success(text string) Result { return Result{OK: true, Text: text, Kind: KindSuccess} }
func Errorf(format string, a ...any) Result {
	return Result{Text: fmt.Sprintf(format, a...), Kind: KindError}
}
func Info(text string) Result    { return Result{Text: text, Kind: KindInfo} }
func Warning(text string) Result { return Result{Text: text, Kind: KindWarning} }

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher resolves and executes commands. It is stateless between
// calls: each Execute is an independent request/response with no side
// effect on history or the shared Context.
type Dispatcher struct {
	registry  *Registry
	threshold int
}

// NewDispatcher creates a dispatcher over the given registry using the
// default typo-suggestion threshold.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry, threshold: DefaultSuggestThreshold}
}

// Registry returns the dispatcher's command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Execute tokenizes raw input, resolves the command, validates its
// arguments, and invokes the handler exactly once. Every failure mode is
// reported through the Result; Execute never panics and never returns an
// error to the caller.
func (d *Dispatcher) Execute(ctx context.Context, cc *Context, raw string) Result {
	line := Tokenize(raw)

	// Empty input is a prompt, not an error.
	if line.Command == "" {
		return Info("Type a command, or 'help' to see what's available.")
	}

	cmd := d.registry.Resolve(line.Command)
	if cmd == nil {
		return d.unknownCommand(line.Command)
	}

	if err := validateArgs(cmd, line.Args); err != nil {
		text := fmt.Sprintf("%v", err)
		if cmd.Usage != "" {
			text += "\nusage: " + cmd.Usage
		}
		return Result{Text: text, Kind: KindError}
	}

	return d.invoke(ctx, cc, cmd, line.Args)
}

// invoke runs the handler, converting an error return or a panic into an
// error-kind Result. This is the only place faults are caught; a fault in
// one command never ends the session.
func (d *Dispatcher) invoke(ctx context.Context, cc *Context, cmd *Command, args []string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Errorf("%s failed: %v", cmd.Name, r)
		}
	}()

	res, err := cmd.Handler(ctx, cc, args)
	if err != nil {
		return Errorf("%s failed: %v", cmd.Name, err)
	}
	return res
}

// unknownCommand builds the error Result for an unresolved token,
// including up to three typo suggestions.
func (d *Dispatcher) unknownCommand(token string) Result {
	text := fmt.Sprintf("command not found: %s", token)

	suggestions := Suggest(token, d.registry.Names(), d.threshold)
	if len(suggestions) > 0 {
		text += "\nDid you mean: " + strings.Join(suggestions, ", ") + "?"
	}

	return Result{Text: text, Kind: KindError}
}

// =============================================================================
// ARGUMENT VALIDATION
// =============================================================================

// validateArgs checks args against the command's ArgDefs, then runs the
// command's custom validator if any. No partial execution occurs on
// rejection.
func validateArgs(cmd *Command, args []string) error {
	for i, argDef := range cmd.Args {
		if argDef.Required && i >= len(args) {
			return &ValidationError{
				Command: cmd.Name,
				Arg:     argDef.Name,
				Message: "required argument missing",
			}
		}

		if i < len(args) && argDef.Type == ArgTypeEnum && len(argDef.Values) > 0 {
			valid := false
			for _, v := range argDef.Values {
				if strings.EqualFold(args[i], v) {
					valid = true
					break
				}
			}
			if !valid {
				return &ValidationError{
					Command:  cmd.Name,
					Arg:      argDef.Name,
					Message:  "invalid value",
					Got:      args[i],
					Expected: strings.Join(argDef.Values, ", "),
				}
			}
		}
	}

	if cmd.Validate != nil {
		return cmd.Validate(args)
	}
	return nil
}

// ValidationError represents an argument validation error.
type ValidationError struct {
	Command  string
	Arg      string
	Message  string
	Got      string
	Expected string
}

func (e *ValidationError) Error() string {
	msg := e.Command + ": " + e.Message
	if e.Arg != "" {
		msg += " for argument '" + e.Arg + "'"
	}
	if e.Got != "" {
		msg += " (got: " + e.Got + ")"
	}
	if e.Expected != "" {
		msg += " - expected: " + e.Expected
	}
	return msg
}
