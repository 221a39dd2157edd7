// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// DefaultSuggestThreshold is the maximum edit distance for a candidate to
// be offered as a typo correction.
const DefaultSuggestThreshold = 2

// maxSuggestions caps how many corrections are offered for one miss.
const maxSuggestions = 3

// Suggest ranks candidates by edit distance to input and returns up to
// three within the threshold, best match first. Matching is
// case-insensitive. Candidates beyond the threshold are excluded entirely;
// there is no best-effort fallback. Ties keep candidate input order.
func Suggest(input string, candidates []string, threshold int) []string {
	input = strings.ToLower(input)
	if input == "" {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	var matches []scored
	seen := make(map[string]bool, len(candidates))

	for _, cand := range candidates {
		folded := strings.ToLower(cand)
		if seen[folded] {
			continue
		}
		seen[folded] = true

		dist := levenshteinDistance(input, folded)
		if dist > threshold {
			continue
		}
		matches = append(matches, scored{name: cand, dist: dist})
	}

	// Insertion sort by distance keeps the tie order stable without
	// pulling in sort.SliceStable for a handful of entries.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].dist < matches[j-1].dist; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	if len(matches) == 0 {
		return nil
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

// levenshteinDistance calculates the edit distance between two strings:
// the minimum number of single-character insertions, deletions, or
// substitutions required to change one string into the other.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	rows := len(s1) + 1
	cols := len(s2) + 1

	// Two rows instead of the full matrix for memory efficiency.
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}

// min3 returns the minimum of three integers.
func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
