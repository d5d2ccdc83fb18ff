/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"sort"
	"strings"
)

// SuggestionList filters options down to those lexically close to input and sorts them by
// similarity, closest first. An option qualifies when its distance to input stays within half the
// length of the longer of the two strings (at least 1, so single-character typos always qualify).
// Used to build "Did you mean ...?" diagnostics for a name that matched nothing.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	var (
		suggestions []string
		distances   = make(map[string]int, len(options))
	)
	inputHalf := len(input) / 2
	for _, option := range options {
		threshold := inputHalf
		if optionHalf := len(option) / 2; optionHalf > threshold {
			threshold = optionHalf
		}
		if threshold < 1 {
			threshold = 1
		}
		if distance := lexicalDistance(input, option); distance <= threshold {
			suggestions = append(suggestions, option)
			distances[option] = distance
		}
	}

	// Stable so that equally distant options keep their declaration order.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return distances[suggestions[i]] < distances[suggestions[j]]
	})
	return suggestions
}

// lexicalDistance is the Damerau-Levenshtein distance between a and b: the minimum number of
// single-character insertions, deletions, substitutions, or adjacent-character swaps turning one
// into the other -- with one alteration: case changes alone count as a single edit in total, so a
// mis-cased name stays at distance 1 however long it is.
func lexicalDistance(a, b string) int {
	if a == b {
		return 0
	}

	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}

	// Rolling three-row formulation of the usual matrix: cur is computed from prev, with prevPrev
	// kept one row further back for the adjacent-swap case.
	prevPrev := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d := prev[j] + 1 // deletion
			if ins := cur[j-1] + 1; ins < d {
				d = ins // insertion
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub // substitution
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if swap := prevPrev[j-2] + cost; swap < d {
					d = swap // adjacent swap
				}
			}
			cur[j] = d
		}

		prevPrev, prev, cur = prev, cur, prevPrev
	}

	return prev[len(b)]
}
