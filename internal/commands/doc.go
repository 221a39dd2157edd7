// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements the terminal command system for termfolio:
// a quote-aware tokenizer, a registry of named and aliased commands, a
// Levenshtein-based typo suggester, prefix completion, and a stateless
// dispatcher that turns a raw input line into a structured Result.
//
// The dispatcher has no side effects between calls. History tracking and
// context mutation belong to the hosting shell (internal/ui/term or the
// plain REPL in internal/cli), which owns the Context object and the
// bounded history stores.
package commands
