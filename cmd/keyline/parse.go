// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keyline/keyline/internal/command"
)

// parseConfig holds flags for the parse subcommand.
type parseConfig struct {
	fallback  bool
	keep      bool
	bestMatch bool
	jsonOut   bool
}

// NewParseCmd creates the parse subcommand.
func NewParseCmd() *cobra.Command {
	cfg := &parseConfig{}

	cmd := &cobra.Command{
		Use:   "parse [flags] -- <text>",
		Short: "Parse a command line and print the result",
		Long: `Parse a command line the way a keyboard-driven application would:
aliases are expanded, the text is split on ";;" into sub-commands, and
each sub-command is matched against the loaded definitions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, cfg, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVar(&cfg.fallback, "fallback", false, "tokenize unknown commands instead of failing")
	cmd.Flags().BoolVar(&cfg.keep, "keep", false, "keep whitespace and quotes in the output tokens")
	cmd.Flags().BoolVar(&cfg.bestMatch, "best-match", false, "pick the best match when a prefix is ambiguous")
	cmd.Flags().BoolVar(&cfg.jsonOut, "json", false, "print results as JSON")

	return cmd
}

// outcomeJSON is the JSON shape of a single parse outcome.
type outcomeJSON struct {
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	Cmdline []string `json:"cmdline,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, cfg *parseConfig, text string) error {
	e, err := buildEnv(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), command.UserMessage(err))
		return err
	}

	opts := command.ParseOptions{
		Fallback:  cfg.fallback,
		Keep:      cfg.keep,
		BestMatch: cfg.bestMatch,
	}

	outcomes, err := e.parser.ParseAll(text, e.registry, e.aliases, opts)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), command.UserMessage(err))
		return err
	}

	if cfg.jsonOut {
		return printJSON(cmd, outcomes)
	}
	return printPlain(cmd, outcomes)
}

func printJSON(cmd *cobra.Command, outcomes []command.Outcome) error {
	out := make([]outcomeJSON, 0, len(outcomes))
	var failed error
	for _, o := range outcomes {
		if o.Err != nil {
			out = append(out, outcomeJSON{Error: command.UserMessage(o.Err)})
			failed = o.Err
			continue
		}
		item := outcomeJSON{
			Args:    o.Result.Args,
			Cmdline: o.Result.Cmdline,
		}
		if o.Result.Cmd != nil {
			item.Command = o.Result.Cmd.Name
		}
		out = append(out, item)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding outcomes: %w", err)
	}
	return failed
}

func printPlain(cmd *cobra.Command, outcomes []command.Outcome) error {
	var failed error
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), command.UserMessage(o.Err))
			failed = o.Err
			continue
		}
		if o.Result.Cmd == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "(fallback) %s\n", formatTokens(o.Result.Cmdline))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", o.Result.Cmd.Name, formatTokens(o.Result.Args))
	}
	return failed
}

// formatTokens renders tokens so empty and whitespace tokens stay visible.
func formatTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = fmt.Sprintf("%q", tok)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}
