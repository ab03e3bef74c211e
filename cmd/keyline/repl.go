// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/keyline/keyline/internal/command"
	"github.com/keyline/keyline/internal/observability"
	"github.com/keyline/keyline/pkg/errutil"
)

// replConfig holds flags for the repl subcommand.
type replConfig struct {
	fallback  bool
	keep      bool
	bestMatch bool
}

// NewReplCmd creates the repl subcommand.
func NewReplCmd() *cobra.Command {
	cfg := &replConfig{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse command lines interactively",
		Long: `Read command lines from stdin and print the parse result for each.
Type "exit" or press Ctrl-D to quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.fallback, "fallback", false, "tokenize unknown commands instead of failing")
	cmd.Flags().BoolVar(&cfg.keep, "keep", false, "keep whitespace and quotes in the output tokens")
	cmd.Flags().BoolVar(&cfg.bestMatch, "best-match", false, "pick the best match when a prefix is ambiguous")

	return cmd
}

func runRepl(cmd *cobra.Command, cfg *replConfig) error {
	e, err := buildEnv(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), command.UserMessage(err))
		return err
	}

	sessionID := ulid.Make().String()
	logger := slog.With("session_id", sessionID)
	logger.Info("repl session started")

	if e.cfg.Observability.Enabled {
		obs := observability.NewServer(e.cfg.Observability.Addr, func() bool { return true })
		errCh, err := obs.Start()
		if err != nil {
			return err
		}
		go func() {
			if serveErr := <-errCh; serveErr != nil {
				errutil.LogError(logger, "observability server failed", serveErr)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if stopErr := obs.Stop(ctx); stopErr != nil {
				logger.Error("observability server stop failed", "error", stopErr)
			}
		}()
		logger.Info("metrics listening", "addr", obs.Addr())
	}

	opts := command.ParseOptions{
		Fallback:  cfg.fallback,
		Keep:      cfg.keep,
		BestMatch: cfg.bestMatch,
	}

	prompt := color.New(color.FgCyan, color.Bold).FprintfFunc()
	errline := color.New(color.FgRed).FprintlnFunc()
	tracer := otel.Tracer("keyline/repl")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		prompt(cmd.OutOrStdout(), "keyline> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			break
		}

		ctx, span := tracer.Start(cmd.Context(), "repl.parse",
			trace.WithAttributes(attribute.String("session_id", sessionID)))

		outcomes, err := e.parser.ParseAll(line, e.registry, e.aliases, opts)
		if err != nil {
			errline(cmd.ErrOrStderr(), command.UserMessage(err))
			span.End()
			continue
		}

		for _, o := range outcomes {
			if o.Err != nil {
				errline(cmd.ErrOrStderr(), command.UserMessage(o.Err))
				continue
			}
			if o.Result.Cmd == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "(fallback) %s\n", formatTokens(o.Result.Cmdline))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", o.Result.Cmd.Name, formatTokens(o.Result.Args))
		}

		slog.InfoContext(ctx, "line parsed", "session_id", sessionID, "outcomes", len(outcomes))
		span.End()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	logger.Info("repl session ended")
	return nil
}
