// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides size-bounded, FIFO-evicting logs for typed
// commands and produced output, mirrored to a local snapshot store.
//
// The in-memory sequence is the source of truth for the session;
// persistence is best-effort write-through. A missing, corrupt, or
// version-mismatched snapshot loads as empty state, never as an error.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Default capacities for the two session logs.
const (
	DefaultCommandCap = 50
	DefaultOutputCap  = 100
)

// =============================================================================
// BOUNDED RING
// =============================================================================

// Ring is an append-only sequence bounded to a fixed capacity. When the
// capacity is exceeded the oldest entries are dropped; insertion order of
// the survivors is preserved and is the display order.
type Ring[T any] struct {
	cap   int
	items []T
}

// NewRing creates a ring with the given capacity. A non-positive capacity
// falls back to 1 so Append always retains the newest entry.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring[T]{cap: capacity}
}

// Append pushes an entry to the end, evicting from the front while over
// capacity.
func (r *Ring[T]) Append(entry T) {
	r.items = append(r.items, entry)
	if over := len(r.items) - r.cap; over > 0 {
		r.items = append(r.items[:0], r.items[over:]...)
	}
}

// Replace swaps the ring contents for the given entries, applying the same
// capacity truncation (newest entries win). Used when restoring snapshots.
func (r *Ring[T]) Replace(entries []T) {
	if over := len(entries) - r.cap; over > 0 {
		entries = entries[over:]
	}
	r.items = append(r.items[:0:0], entries...)
}

// Items returns a copy of the current entries, oldest first.
func (r *Ring[T]) Items() []T {
	return append([]T(nil), r.items...)
}

// Len returns the number of stored entries.
func (r *Ring[T]) Len() int { return len(r.items) }

// Cap returns the configured capacity.
func (r *Ring[T]) Cap() int { return r.cap }

// Clear empties the ring.
func (r *Ring[T]) Clear() { r.items = r.items[:0] }

// =============================================================================
// SNAPSHOT STORE BINDING
// =============================================================================

// SnapshotStore persists keyed snapshots. Implemented by internal/state.
// Load reports false when no usable snapshot exists; Save and Delete are
// best-effort and must never fail outward.
type SnapshotStore interface {
	Load(key string, v any) bool
	Save(key string, v any)
	Delete(key string)
}

// Snapshot keys. These are fixed identifiers in the local store; changing
// one orphans existing snapshots.
const (
	KeyCommandHistory = "command_history"
	KeyOutputLog      = "output_log"
)

// =============================================================================
// COMMAND HISTORY
// =============================================================================

// CommandHistory is the bounded log of raw command lines the user typed.
type CommandHistory struct {
	ring  *Ring[string]
	store SnapshotStore
}

// NewCommandHistory creates a command history with the given capacity,
// restoring any persisted snapshot. store may be nil for memory-only use.
func NewCommandHistory(capacity int, store SnapshotStore) *CommandHistory {
	h := &CommandHistory{ring: NewRing[string](capacity), store: store}
	if store != nil {
		var lines []string
		if store.Load(KeyCommandHistory, &lines) {
			h.ring.Replace(lines)
		}
	}
	return h
}

// Append records one typed line and mirrors the log to the store.
func (h *CommandHistory) Append(line string) {
	h.ring.Append(line)
	h.save()
}

// Lines returns the logged command lines, oldest first.
func (h *CommandHistory) Lines() []string { return h.ring.Items() }

// Len returns the number of logged lines.
func (h *CommandHistory) Len() int { return h.ring.Len() }

// Clear empties the log and removes the persisted snapshot.
func (h *CommandHistory) Clear() {
	h.ring.Clear()
	if h.store != nil {
		h.store.Delete(KeyCommandHistory)
	}
}

func (h *CommandHistory) save() {
	if h.store != nil {
		h.store.Save(KeyCommandHistory, h.ring.Items())
	}
}

// =============================================================================
// OUTPUT LOG
// =============================================================================

// OutputEntry is one produced output line in the terminal transcript.
type OutputEntry struct {
	// ID uniquely identifies the entry within and across sessions.
	ID string `json:"id"`

	// Text is the rendered output.
	Text string `json:"text"`

	// Kind is the result severity: success, error, info, or warning.
	Kind string `json:"kind"`

	// Time is when the entry was produced.
	Time time.Time `json:"time"`

	// Pending marks an entry whose command is still running.
	Pending bool `json:"pending,omitempty"`
}

// NewOutputEntry builds an entry with a fresh ID and the current time.
func NewOutputEntry(text, kind string) OutputEntry {
	return OutputEntry{
		ID:   uuid.NewString(),
		Text: text,
		Kind: kind,
		Time: time.Now(),
	}
}

// OutputLog is the bounded log of produced output entries.
type OutputLog struct {
	ring  *Ring[OutputEntry]
	store SnapshotStore
}

// NewOutputLog creates an output log with the given capacity, restoring
// any persisted snapshot. store may be nil for memory-only use.
func NewOutputLog(capacity int, store SnapshotStore) *OutputLog {
	l := &OutputLog{ring: NewRing[OutputEntry](capacity), store: store}
	if store != nil {
		var entries []OutputEntry
		if store.Load(KeyOutputLog, &entries) {
			l.ring.Replace(entries)
		}
	}
	return l
}

// Append records one output entry and mirrors the log to the store.
func (l *OutputLog) Append(entry OutputEntry) {
	l.ring.Append(entry)
	l.save()
}

// Entries returns the logged output, oldest first.
func (l *OutputLog) Entries() []OutputEntry { return l.ring.Items() }

// Len returns the number of logged entries.
func (l *OutputLog) Len() int { return l.ring.Len() }

// Clear empties the log and removes the persisted snapshot.
func (l *OutputLog) Clear() {
	l.ring.Clear()
	if l.store != nil {
		l.store.Delete(KeyOutputLog)
	}
}

func (l *OutputLog) save() {
	if l.store != nil {
		l.store.Save(KeyOutputLog, l.ring.Items())
	}
}
