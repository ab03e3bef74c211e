// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"strings"

	"github.com/keyline/keyline/internal/split"
)

// CmdSplitter separates chained commands on a single input line. A command
// that wants to receive it as literal argument text declares NoCmdSplit.
const CmdSplitter = ";;"

// Parser turns one line of typed input into command invocations.
//
// A Parser is stateless apart from its partial-match flag, set once at
// construction; the registry and alias map are read-only snapshots
// supplied per call. Calls are safe from multiple goroutines as long as
// the caller does not mutate those snapshots during a call.
type Parser struct {
	partialMatch bool
}

// ParserOption configures a Parser during construction.
type ParserOption func(*Parser)

// WithPartialMatch enables matching typed prefixes and substrings against
// registered command names.
func WithPartialMatch() ParserOption {
	return func(p *Parser) {
		p.partialMatch = true
	}
}

// NewParser creates a parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseAll parses a full input line, resolving aliases and splitting
// chained commands on ";;".
//
// Leading and trailing whitespace and any leading ":" markers are
// stripped first; an empty remainder fails with EMPTY_INPUT. When the
// line chains several commands, each is parsed independently and reported
// as its own Outcome in left-to-right order; a failing sub-command does
// not short-circuit the ones after it.
//
// If the first chained command declares NoCmdSplit, the whole line is
// parsed as that single command and ";;" is passed through as argument
// text. Discovering that requires speculatively parsing the first
// segment; when that parse fails or falls back, the line splits normally.
func (p *Parser) ParseAll(text string, src Source, aliases map[string]string, opts ParseOptions) ([]Outcome, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimLeft(text, ":")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput()
	}

	if len(aliases) > 0 {
		if head, _ := splitFirstWord(text); head != "" {
			if _, ok := aliases[head]; ok {
				text = ResolveAlias(text, aliases)
				RecordAliasExpansion(head)
			}
		}
	}

	subTexts := []string{text}
	if strings.Contains(text, CmdSplitter) {
		// Probe the first segment without recording metrics; it is
		// parsed again below as a regular sub-command.
		first, _, _ := strings.Cut(text, CmdSplitter)
		result, err := p.parse(first, src, opts, false)
		noSplit := err == nil && result.Cmd != nil && result.Cmd.NoCmdSplit
		if !noSplit {
			parts := strings.Split(text, CmdSplitter)
			subTexts = make([]string, len(parts))
			for i, part := range parts {
				subTexts[i] = strings.TrimSpace(part)
			}
		}
	}
	if len(subTexts) > 1 {
		RecordCompoundSplit()
	}

	outcomes := make([]Outcome, 0, len(subTexts))
	for _, sub := range subTexts {
		result, err := p.Parse(sub, src, opts)
		outcomes = append(outcomes, Outcome{Result: result, Err: err})
	}
	return outcomes, nil
}

// Parse parses a single command invocation.
//
// The first space splits text into command token and argument string. The
// command token goes through partial matching (when enabled) and registry
// lookup; the argument string is split according to the command's
// metadata. With Fallback set, an unknown command token yields a raw
// tokenization of the whole text instead of an error.
func (p *Parser) Parse(text string, src Source, opts ParseOptions) (*ParseResult, error) {
	return p.parse(text, src, opts, true)
}

// parse implements Parse. With record unset no metrics are emitted, so a
// speculative parse does not inflate the counters.
func (p *Parser) parse(text string, src Source, opts ParseOptions, record bool) (*ParseResult, error) {
	cmdstr, argstr, found := strings.Cut(text, " ")
	sep := ""
	if found {
		sep = " "
	}

	if cmdstr == "" && !opts.Fallback {
		if record {
			RecordParse(StatusEmpty)
		}
		return nil, ErrEmptyInput()
	}

	if p.partialMatch {
		cmdstr = completionMatch(cmdstr, src, opts.BestMatch)
	}

	cmd, ok := src.Lookup(cmdstr)
	if !ok {
		if !opts.Fallback {
			if record {
				RecordParse(StatusUnknown)
			}
			return nil, ErrUnknownCommand(cmdstr)
		}
		if record {
			RecordParse(StatusFallback)
		}
		return &ParseResult{Cmdline: split.Split(text, opts.Keep)}, nil
	}

	args := splitArgs(cmd, argstr, opts.Keep)

	var cmdline []string
	switch {
	case opts.Keep && len(args) > 0:
		cmdline = append([]string{cmdstr, sep + args[0]}, args[1:]...)
	case opts.Keep:
		cmdline = []string{cmdstr, sep}
	default:
		cmdline = append([]string{cmdstr}, args...)
	}

	if record {
		RecordParse(StatusSuccess)
	}
	return &ParseResult{Cmd: cmd, Args: args, Cmdline: cmdline}, nil
}

// splitArgs splits an argument string according to the command's declared
// splitting policy.
//
// Unbounded commands get a full shell tokenization. Bounded commands are
// tokenized twice with the whitespace tokenizer: an unbounded first pass
// locates the first positional token, skipping leading flags and counting
// the flags that consume a following token, and the second pass re-splits
// with the computed bound so everything past it stays one token. Both
// passes must use the same tokenization rules or the bound would not line
// up.
//
// Example, MaxSplit=0 with "-v" consuming an argument:
//
//	input:       "--foo -v bar baz qux"
//	first pass:  ["--foo", "-v", "bar", "baz", "qux"]
//	               0        1     2      3      4
//	second pass: ["--foo", "-v", "bar", "baz qux"]
//
// The first positional token is at index 2 and "-v" consumed one token,
// so the bound is 2 + 0 + 1 = 3.
func splitArgs(cmd *Command, argstr string, keep bool) []string {
	if argstr == "" {
		return []string{}
	}
	if cmd.MaxSplit == nil {
		return split.Split(argstr, keep)
	}

	allTokens := split.Simple(argstr, keep, -1)
	flagArgCount := 0
	for i, arg := range allTokens {
		arg = strings.TrimSpace(arg)
		if strings.HasPrefix(arg, "-") {
			if cmd.TakesFlagArg(arg) {
				flagArgCount++
			}
		} else {
			bound := i + *cmd.MaxSplit + flagArgCount
			return split.Simple(argstr, keep, bound)
		}
	}

	// Only flags: there is nothing to join, so the first pass already got
	// it right.
	return allTokens
}
