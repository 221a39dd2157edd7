// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// ROUND-TRIP TESTS
// =============================================================================

func TestStoreRoundTrip(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	s.Save("lines", []string{"help", "projects"})

	var got []string
	require.True(t, s.Load("lines", &got))
	require.Equal(t, []string{"help", "projects"}, got)
}

func TestStoreRoundTripScalar(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	s.Save(KeyGuideDismissed, true)

	var dismissed bool
	require.True(t, s.Load(KeyGuideDismissed, &dismissed))
	require.True(t, dismissed)
}

func TestStoreLoadMissingKey(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	var v []string
	require.False(t, s.Load("absent", &v))
	require.Nil(t, v)
}

func TestStoreSaveOverwrites(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	s.Save("k", []int{1})
	s.Save("k", []int{2, 3})

	var got []int
	require.True(t, s.Load("k", &got))
	require.Equal(t, []int{2, 3}, got)
}

func TestStoreDelete(t *testing.T) {
	s := OpenMemory()
	defer s.Close()

	s.Save("k", "v")
	s.Delete("k")

	var got string
	require.False(t, s.Load("k", &got))
}

// =============================================================================
// CORRUPTION AND VERSIONING TESTS
// =============================================================================

func TestStoreDiscardsCorruptPayload(t *testing.T) {
	s := OpenMemory()
	s.mem["bad"] = []byte("this is not json{")

	var got []string
	require.False(t, s.Load("bad", &got))
	require.Nil(t, got, "a corrupt snapshot must leave the target untouched")
}

func TestStoreDiscardsVersionMismatch(t *testing.T) {
	s := OpenMemory()

	data, err := json.Marshal([]string{"help"})
	require.NoError(t, err)
	payload, err := json.Marshal(envelope{Version: SchemaVersion + 1, Data: data})
	require.NoError(t, err)
	s.mem["future"] = payload

	var got []string
	require.False(t, s.Load("future", &got))
	require.Nil(t, got)
}

func TestStoreDiscardsMistypedData(t *testing.T) {
	s := OpenMemory()
	s.Save("k", "a string")

	// Loading into an incompatible type reports false, not a panic.
	var got []int
	require.False(t, s.Load("k", &got))
}

// =============================================================================
// SQLITE-BACKED TESTS
// =============================================================================

func TestStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s := Open(path)
	s.Save(KeyVisitedSections, []string{"about", "skills"})
	s.Close()

	// A second open sees the first session's snapshot.
	s2 := Open(path)
	defer s2.Close()

	var visited []string
	require.True(t, s2.Load(KeyVisitedSections, &visited))
	require.Equal(t, []string{"about", "skills"}, visited)
}

func TestStoreOnDiskDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s := Open(path)
	defer s.Close()

	s.Save("k", 42)
	s.Delete("k")

	var got int
	require.False(t, s.Load("k", &got))
}

func TestOpenUnwritablePathDegradesToMemory(t *testing.T) {
	// A path whose parent cannot be created still yields a working store.
	s := Open(string([]byte{0}) + "/nope/state.db")
	defer s.Close()

	s.Save("k", "v")
	var got string
	require.True(t, s.Load("k", &got))
	require.Equal(t, "v", got)
}
