// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

// Package command provides the command registry and the command-line
// parser: alias resolution, compound splitting on ";;", partial name
// matching, and flag-aware argument splitting.
package command

// Command describes a registered command's parse-relevant metadata.
type Command struct {
	Name          string   // canonical name (e.g., "open")
	MaxSplit      *int     // bound on argument splitting; nil means split everything
	NoCmdSplit    bool     // command consumes ";;" literally instead of chaining
	FlagsWithArgs []string // flags that consume one following positional token
	Help          string   // short description (one line)
	Usage         string   // usage pattern (e.g., "open <url>")
	Source        string   // "builtin" or the definition file that declared it
}

// TakesFlagArg reports whether flag is declared to consume a following
// positional token.
func (c *Command) TakesFlagArg(flag string) bool {
	for _, f := range c.FlagsWithArgs {
		if f == flag {
			return true
		}
	}
	return false
}

// Source provides read-only command lookup for parsing. Implementations
// must not be mutated during a parse call; the parser itself never writes.
type Source interface {
	// Lookup retrieves a command by exact name.
	Lookup(name string) (*Command, bool)
	// Names returns all registered command names.
	Names() []string
}

// ParseResult is the outcome of parsing one command invocation.
//
// Cmd is nil when parsing fell back to raw splitting; Args is nil whenever
// Cmd is nil. Cmdline holds display tokens for re-rendering the parsed
// line: in keep mode the tokens carry their original separators, so
// concatenating them reproduces the parsed text.
type ParseResult struct {
	Cmd     *Command
	Args    []string
	Cmdline []string
}

// Outcome is one sub-command of a (possibly compound) command line:
// either a ParseResult or the error that sub-command produced. Outcomes
// are independent; one failing sub-command does not affect the others.
type Outcome struct {
	Result *ParseResult
	Err    error
}

// ParseOptions controls a single parse call.
type ParseOptions struct {
	// Fallback accepts unknown commands by returning a raw tokenization
	// of the whole line instead of an error.
	Fallback bool
	// Keep retains separators and special characters in display tokens.
	Keep bool
	// BestMatch picks the shortest candidate when partial matching is
	// ambiguous instead of leaving the input unchanged.
	BestMatch bool
}
