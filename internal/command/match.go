// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"cmp"
	"slices"
	"strings"
)

// completionMatch replaces cmdstr with a matching registered name when the
// match is unambiguous.
//
// Candidates are the registered names containing cmdstr as a substring,
// ordered by ascending length with ties broken lexically. A single
// candidate always wins; with best set, the first candidate wins even when
// several match. Otherwise cmdstr is returned unmodified and the ambiguity
// surfaces later as an ordinary lookup failure.
func completionMatch(cmdstr string, src Source, best bool) string {
	var matches []string
	for _, name := range src.Names() {
		if strings.Contains(name, cmdstr) {
			matches = append(matches, name)
		}
	}
	slices.SortFunc(matches, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	if len(matches) == 1 || (len(matches) > 1 && best) {
		return matches[0]
	}
	return cmdstr
}
