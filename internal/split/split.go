// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

// Package split tokenizes command-line text with shell-like quoting rules.
//
// Two tokenizers are provided: Split understands quotes and escapes, Simple
// splits on whitespace only. Both support a "keep" mode that retains every
// input character in the output so a parsed line can be re-displayed
// exactly as the user typed it.
package split

import "strings"

// whitespace accepted as a token separator by the shell lexer.
const lexWhitespace = " \t\r"

// whitespace accepted as a token separator by Simple.
const simpleWhitespace = " \t\n"

type lexState int

const (
	stateSpace lexState = iota
	stateWord
	stateSingle
	stateDouble
	stateEscape       // backslash outside quotes
	stateDoubleEscape // backslash inside double quotes
)

// lexer is a character state machine for shell-like splitting.
// Single quotes are literal, double quotes allow escaping of the quote and
// the backslash itself. In keep mode every input character ends up in some
// token, with whitespace runs emitted as separate tokens.
type lexer struct {
	keep   bool
	tokens []string
	token  strings.Builder
	quoted bool // token contained quotes, so an empty token still counts
	state  lexState
}

func (l *lexer) flush() {
	if l.token.Len() > 0 || l.quoted {
		l.tokens = append(l.tokens, l.token.String())
	}
	l.token.Reset()
	l.quoted = false
}

func (l *lexer) run(s string) []string {
	for _, r := range s {
		switch l.state {
		case stateSpace:
			switch {
			case strings.ContainsRune(lexWhitespace, r):
				if l.keep {
					l.token.WriteRune(r)
				}
			case r == '\\':
				l.flush()
				if l.keep {
					l.token.WriteRune(r)
				}
				l.state = stateEscape
			case r == '\'':
				l.flush()
				if l.keep {
					l.token.WriteRune(r)
				}
				l.quoted = true
				l.state = stateSingle
			case r == '"':
				l.flush()
				if l.keep {
					l.token.WriteRune(r)
				}
				l.quoted = true
				l.state = stateDouble
			default:
				l.flush()
				l.token.WriteRune(r)
				l.state = stateWord
			}
		case stateWord:
			switch {
			case strings.ContainsRune(lexWhitespace, r):
				l.flush()
				if l.keep {
					l.token.WriteRune(r)
				}
				l.state = stateSpace
			case r == '\\':
				if l.keep {
					l.token.WriteRune(r)
				}
				l.state = stateEscape
			case r == '\'':
				if l.keep {
					l.token.WriteRune(r)
				}
				l.quoted = true
				l.state = stateSingle
			case r == '"':
				if l.keep {
					l.token.WriteRune(r)
				}
				l.quoted = true
				l.state = stateDouble
			default:
				l.token.WriteRune(r)
			}
		case stateSingle:
			if r == '\'' {
				if l.keep {
					l.token.WriteRune(r)
				}
				l.state = stateWord
			} else {
				l.token.WriteRune(r)
			}
		case stateDouble:
			switch r {
			case '"':
				if l.keep {
					l.token.WriteRune(r)
				}
				l.state = stateWord
			case '\\':
				if l.keep {
					l.token.WriteRune(r)
				}
				l.state = stateDoubleEscape
			default:
				l.token.WriteRune(r)
			}
		case stateEscape:
			l.token.WriteRune(r)
			l.state = stateWord
		case stateDoubleEscape:
			if r != '"' && r != '\\' && !l.keep {
				// Only the quote and the backslash are escapable inside
				// double quotes; everything else keeps its backslash.
				l.token.WriteByte('\\')
			}
			l.token.WriteRune(r)
			l.state = stateDouble
		}
	}

	// A trailing backslash is taken literally.
	if l.state == stateEscape && !l.keep {
		l.token.WriteByte('\\')
	}
	l.flush()
	return l.tokens
}

// Split tokenizes s with shell-like quoting and escaping rules.
//
// With keep set, quotes, escapes and whitespace are retained: each
// whitespace run is attached to the front of the token that follows it
// (a pure trailing run becomes a final token), so concatenating the
// returned tokens reproduces s exactly.
func Split(s string, keep bool) []string {
	l := lexer{keep: keep}
	tokens := l.run(s)
	if !keep {
		return tokens
	}

	// The lexer emits whitespace runs as separate tokens; merge each run
	// into the token that follows it.
	var out []string
	spaces := ""
	for _, t := range tokens {
		if t != "" && strings.TrimLeft(t, lexWhitespace) == "" {
			spaces += t
		} else {
			out = append(out, spaces+t)
			spaces = ""
		}
	}
	if spaces != "" {
		out = append(out, spaces)
	}
	return out
}

func isSimpleSpace(b byte) bool {
	return strings.IndexByte(simpleWhitespace, b) >= 0
}

// Simple splits s on whitespace runs, without any quote handling.
//
// maxsplit bounds the number of splits: negative means unbounded, zero
// returns s unsplit as a single token, and otherwise everything after the
// maxsplit'th token is joined into one final token with its internal
// whitespace preserved. With keep set, each whitespace run is attached to
// the end of the preceding token (leading whitespace to the front of the
// first token) so concatenating the result reproduces s; the bound counts
// tokens identically in both modes.
func Simple(s string, keep bool, maxsplit int) []string {
	if maxsplit == 0 {
		return []string{s}
	}

	var out []string
	i := 0
	j := i
	for j < len(s) && isSimpleSpace(s[j]) {
		j++
	}
	lead := s[:j]
	i = j

	for i < len(s) {
		if maxsplit > 0 && len(out) == maxsplit {
			rest := s[i:]
			if keep {
				rest = lead + rest
			}
			out = append(out, rest)
			return out
		}

		start := i
		for i < len(s) && !isSimpleSpace(s[i]) {
			i++
		}
		word := s[start:i]

		start = i
		for i < len(s) && isSimpleSpace(s[i]) {
			i++
		}
		sep := s[start:i]

		if keep {
			out = append(out, lead+word+sep)
			lead = ""
		} else {
			out = append(out, word)
		}
	}

	if keep && lead != "" {
		// Whitespace-only input.
		out = append(out, lead)
	}
	return out
}
