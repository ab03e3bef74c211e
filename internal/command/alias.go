// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import "strings"

// ResolveAlias rewrites the first whitespace-delimited word of text when
// it names an alias, and returns text unchanged otherwise.
//
// The expansion is applied exactly once; it is not re-checked against the
// alias map. Trailing whitespace on text is preserved as a single trailing
// space, since it signals "command complete, awaiting argument entry" to
// the completion machinery.
func ResolveAlias(text string, aliases map[string]string) string {
	head, rest := splitFirstWord(strings.TrimSpace(text))
	if head == "" {
		return text
	}

	expansion, ok := aliases[head]
	if !ok {
		return text
	}

	resolved := expansion
	if rest != "" {
		resolved = expansion + " " + rest
	}
	if strings.HasSuffix(text, " ") {
		resolved += " "
	}
	return resolved
}

// splitFirstWord splits input into the first word and remaining args,
// trimming the whitespace run between them.
func splitFirstWord(input string) (first, rest string) {
	input = strings.TrimLeft(input, " \t")
	if input == "" {
		return "", ""
	}

	idx := strings.IndexAny(input, " \t")
	if idx == -1 {
		return input, ""
	}

	return input[:idx], strings.TrimLeft(input[idx+1:], " \t")
}
