// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"sort"
	"strconv"
)

// siteEntry is one explicit (site, symbol) assignment inside a canonical
// spin product. The tag is interpreted by the owning product type
// (SinglePauliOperator, SingleDecoherenceOperator or
// SinglePlusMinusOperator); identity entries are never stored.
type siteEntry struct {
	site int
	tag  uint8
}

// compareEntries is the shared total order over canonical entry lists:
// first by number of entries, then lexicographically by (site, tag).
func compareEntries(a, b []siteEntry) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}
	for i := range a {
		if a[i].site != b[i].site {
			if a[i].site < b[i].site {
				return -1
			}

			return 1
		}
		if a[i].tag != b[i].tag {
			if a[i].tag < b[i].tag {
				return -1
			}

			return 1
		}
	}

	return 0
}

// minCapacityOf returns the highest referenced site plus one. Entries are
// sorted, so the last one carries the maximum.
func minCapacityOf(entries []siteEntry) int {
	if len(entries) == 0 {
		return 0
	}

	return entries[len(entries)-1].site + 1
}

// sortEntries orders assignments by site and rejects duplicates. Inputs
// come from parsing or assignment-list constructors; merged (multiplied)
// construction goes through the per-basis tables instead.
func sortEntries(entries []siteEntry) ([]siteEntry, error) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].site < entries[j].site })
	for i := 1; i < len(entries); i++ {
		if entries[i].site == entries[i-1].site {
			return nil, fmt.Errorf("site %d: %w", entries[i].site, ErrDuplicateSite)
		}
	}

	return entries, nil
}

// rawToken is one parsed (site, symbol) pair before symbol resolution.
type rawToken struct {
	site   int
	symbol string
}

// tokenizeProduct splits a canonical product string into (site, symbol)
// tokens: each token is a decimal site index followed by a symbol run of
// non-digit characters. "I" alone denotes the identity product; the empty
// string is malformed.
func tokenizeProduct(s string) ([]rawToken, error) {
	if s == "" {
		return nil, fmt.Errorf("empty input: %w", ErrParse)
	}
	if s == "I" {
		return nil, nil
	}

	var tokens []rawToken
	for i := 0; i < len(s); {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return nil, fmt.Errorf("expected site index at %q: %w", s[start:], ErrParse)
		}
		site, err := strconv.Atoi(s[start:i])
		if err != nil {
			return nil, fmt.Errorf("site %q: %w", s[start:i], ErrParse)
		}
		symStart := i
		for i < len(s) && (s[i] < '0' || s[i] > '9') {
			i++
		}
		if symStart == i {
			return nil, fmt.Errorf("site %d missing operator symbol: %w", site, ErrParse)
		}
		tokens = append(tokens, rawToken{site: site, symbol: s[symStart:i]})
	}

	return tokens, nil
}
