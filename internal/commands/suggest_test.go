// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"reflect"
	"testing"
)

// =============================================================================
// SUGGESTION TESTS
// =============================================================================

func TestSuggest(t *testing.T) {
	candidates := []string{"help", "goto", "projects", "theme", "history"}

	tests := []struct {
		name      string
		input     string
		threshold int
		want      []string
	}{
		{"close typo", "helpp", 2, []string{"help"}},
		{"exact match first", "help", 2, []string{"help"}},
		{"case folded", "HELPP", 2, []string{"help"}},
		{"beyond threshold excluded", "zzzzzz", 2, nil},
		{"empty input", "", 2, nil},
		{"threshold zero only exact", "help", 0, []string{"help"}},
		{"threshold zero no typo", "helpp", 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Suggest(tc.input, candidates, tc.threshold)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Suggest(%q, _, %d) = %v, want %v", tc.input, tc.threshold, got, tc.want)
			}
		})
	}
}

func TestSuggestCapsAtThree(t *testing.T) {
	candidates := []string{"cat", "bat", "hat", "mat", "rat"}
	got := Suggest("fat", candidates, 2)
	if len(got) != 3 {
		t.Fatalf("Suggest returned %d suggestions, want 3: %v", len(got), got)
	}
}

func TestSuggestOrdering(t *testing.T) {
	// Closer candidates come first regardless of candidate order.
	candidates := []string{"gates", "goto"}
	got := Suggest("gote", candidates, 2)

	// goto is distance 1, gates is distance 2.
	want := []string{"goto", "gates"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestTieOrderStable(t *testing.T) {
	candidates := []string{"cat", "bat", "hat"}
	got := Suggest("rat", candidates, 2)
	want := []string{"cat", "bat", "hat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want candidate order preserved %v", got, want)
	}
}

func TestSuggestDeduplicates(t *testing.T) {
	candidates := []string{"help", "HELP", "Help"}
	got := Suggest("helpp", candidates, 2)
	if len(got) != 1 {
		t.Errorf("Suggest = %v, want single deduplicated entry", got)
	}
}

func TestSuggestThresholdMonotonic(t *testing.T) {
	// Raising the threshold never removes a suggestion that a lower
	// threshold produced.
	candidates := []string{"help", "goto", "theme", "history", "projects"}
	input := "hist"

	prev := Suggest(input, candidates, 0)
	for threshold := 1; threshold <= 4; threshold++ {
		next := Suggest(input, candidates, threshold)
		for _, p := range prev {
			found := false
			for _, n := range next {
				if n == p {
					found = true
					break
				}
			}
			if !found && len(next) < maxSuggestions {
				t.Errorf("threshold %d dropped %q from %v", threshold, p, next)
			}
		}
		prev = next
	}
}

// =============================================================================
// EDIT DISTANCE TESTS
// =============================================================================

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"help", "helpp", 1},
		{"goto", "gote", 1},
		{"flaw", "lawn", 2},
	}

	for _, tc := range tests {
		got := levenshteinDistance(tc.s1, tc.s2)
		if got != tc.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tc.s1, tc.s2, got, tc.want)
		}
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"help", "hist"},
		{"projects", "proj"},
		{"theme", "them"},
	}
	for _, p := range pairs {
		a := levenshteinDistance(p[0], p[1])
		b := levenshteinDistance(p[1], p[0])
		if a != b {
			t.Errorf("distance(%q,%q)=%d but distance(%q,%q)=%d", p[0], p[1], a, p[1], p[0], b)
		}
	}
}
