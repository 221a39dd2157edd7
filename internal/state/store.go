// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package state provides the local snapshot store for session UI state:
// command history, output log, visited sections, and guide dismissal.
//
// Snapshots are versioned JSON envelopes in a single SQLite database.
// Persistence is strictly best-effort: any storage fault (unopenable
// database, quota, corrupt payload, schema version mismatch) degrades the
// affected key to empty or memory-only state. Nothing in this package
// returns an error to its callers and no storage problem is ever surfaced
// to the end user.
package state

import (
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SchemaVersion tags every snapshot envelope. A stored envelope with a
// different version is discarded on load; there is no migration.
const SchemaVersion = 1

// Snapshot keys beyond those owned by internal/history.
const (
	KeyTerminalVisible = "terminal_visible"
	KeyVisitedSections = "visited_sections"
	KeyGuideDismissed  = "guide_dismissed"
)

// envelope wraps every persisted value.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// =============================================================================
// STORE
// =============================================================================

// Store is a keyed snapshot store backed by SQLite. When the database
// cannot be opened or written, the store falls back to an in-memory map so
// the session keeps working; the fallback is logged once and never shown
// to the user.
type Store struct {
	mu sync.Mutex
	db *sql.DB

	// mem carries snapshots when the database is unavailable.
	mem map[string][]byte
}

// DefaultPath returns the default database location,
// ~/.termfolio/state.db. Falls back to the working directory when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.db"
	}
	return filepath.Join(home, ".termfolio", "state.db")
}

// Open opens (or creates) the snapshot store at path. Open never fails:
// on any error it returns a memory-only store.
func Open(path string) *Store {
	s := &Store{mem: make(map[string][]byte)}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("state: falling back to memory-only store: %v", err)
		return s
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("state: falling back to memory-only store: %v", err)
		return s
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			version    INTEGER NOT NULL,
			payload    BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		log.Printf("state: falling back to memory-only store: %v", err)
		db.Close()
		return s
	}

	s.db = db
	return s
}

// OpenMemory returns a store that never touches disk. Used by tests and
// as the degraded mode.
func OpenMemory() *Store {
	return &Store{mem: make(map[string][]byte)}
}

// Close releases the underlying database, if any.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}

// =============================================================================
// SNAPSHOT OPERATIONS
// =============================================================================

// Save serializes v into a versioned envelope under key. Failures are
// logged and swallowed; the in-memory session state remains the source of
// truth.
func (s *Store) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("state: save %s: %v", key, err)
		return
	}
	payload, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		log.Printf("state: save %s: %v", key, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.mem[key] = payload
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, version, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		key, SchemaVersion, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		log.Printf("state: save %s: %v", key, err)
	}
}

// Load reads the snapshot under key into v. It reports false - and leaves
// v untouched - when the key is absent, the payload is malformed, or the
// schema version does not match. It never returns an error.
func (s *Store) Load(key string, v any) bool {
	payload, ok := s.read(key)
	if !ok {
		return false
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		log.Printf("state: discarding corrupt snapshot %s: %v", key, err)
		return false
	}
	if env.Version != SchemaVersion {
		log.Printf("state: discarding snapshot %s: version %d, want %d", key, env.Version, SchemaVersion)
		return false
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		log.Printf("state: discarding corrupt snapshot %s: %v", key, err)
		return false
	}
	return true
}

// Delete removes the snapshot under key, if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.mem, key)
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		log.Printf("state: delete %s: %v", key, err)
	}
}

func (s *Store) read(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		payload, ok := s.mem[key]
		return payload, ok
	}

	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Printf("state: load %s: %v", key, err)
		return nil, false
	}
	return payload, true
}
