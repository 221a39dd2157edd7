// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
)

// =============================================================================
// TOKENIZER
// =============================================================================

// Line is the result of tokenizing one raw input line.
type Line struct {
	// Command is the first token, lowercased. Empty for blank input;
	// callers must treat an empty command as a no-op, not an error.
	Command string

	// Args are the remaining tokens in order.
	Args []string

	// Raw is the trimmed original input.
	Raw string
}

// Tokenize splits a raw input line into a command name and arguments.
//
// Whitespace runs outside quotes separate tokens. Both ' and " open a
// quoted span; a quote character only closes a span it itself opened, so
// the other quote character is literal inside. An unterminated quote
// absorbs the remainder of the line as literal content.
//
// There is deliberately no escape mechanism: a backslash is an ordinary
// character, and the active quote character cannot be embedded in its own
// span. This matches the observable behavior of the terminal being ported
// and must not be "fixed".
func Tokenize(raw string) Line {
	raw = strings.TrimSpace(raw)

	line := Line{Raw: raw}

	tokens := splitCommandLine(raw)
	if len(tokens) == 0 {
		return line
	}

	line.Command = strings.ToLower(tokens[0])
	if len(tokens) > 1 {
		line.Args = tokens[1:]
	}
	return line
}

// splitCommandLine splits input into tokens, respecting quotes.
func splitCommandLine(input string) []string {
	var tokens []string
	var current strings.Builder
	var inSingleQuote, inDoubleQuote bool

	// Quoting can produce an empty token ("" or ''); track whether the
	// current token was opened at all, not just whether it has content.
	tokenOpen := false

	for _, char := range input {
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			tokenOpen = true

		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			tokenOpen = true

		case unicode.IsSpace(char) && !inSingleQuote && !inDoubleQuote:
			if tokenOpen {
				tokens = append(tokens, current.String())
				current.Reset()
				tokenOpen = false
			}

		default:
			current.WriteRune(char)
			tokenOpen = true
		}
	}

	if tokenOpen {
		tokens = append(tokens, current.String())
	}

	return tokens
}
