// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/keyline/keyline/internal/command"
	"github.com/keyline/keyline/internal/config"
	"github.com/keyline/keyline/internal/logging"
	"github.com/keyline/keyline/internal/xdg"
)

// Global flags available to all subcommands.
var (
	configFile string
	logFormat  string
)

// NewRootCmd creates the root command for the keyline CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyline",
		Short: "Keyline - a command-line parser for keyboard-driven applications",
		Long: `Keyline parses command lines the way keyboard-driven applications do:
alias expansion, compound splitting on ";;", partial command matching,
and flag-aware bounded argument splitting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("commands-file", "", "command definitions file path")
	cmd.PersistentFlags().Bool("partial-match", false, "match unique command name prefixes")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json or text)")

	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewReplCmd())
	cmd.AddCommand(NewCommandsCmd())

	return cmd
}

// env holds everything a subcommand needs to parse input.
type env struct {
	cfg      config.Config
	parser   *command.Parser
	registry *command.Registry
	aliases  map[string]string
}

// buildEnv loads configuration and command definitions for a subcommand.
func buildEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	logging.SetDefault("keyline", version, cfg.Logging.Format)

	registry := command.NewRegistry()
	aliases := map[string]string{}

	data, err := os.ReadFile(cfg.CommandsFile)
	switch {
	case err == nil:
		if err := command.ValidateSchema(data); err != nil {
			return nil, err
		}
		defs, err := command.ParseDefinitions(data)
		if err != nil {
			return nil, err
		}
		registry.LoadDefinitions(defs)
		maps.Copy(aliases, defs.Aliases)
	case errors.Is(err, fs.ErrNotExist) && cfg.CommandsFile == xdg.CommandsFile():
		// Default definitions file is optional.
		slog.Debug("no command definitions file", "path", cfg.CommandsFile)
	default:
		return nil, oops.
			Code("COMMANDS_LOAD_FAILED").
			With("path", cfg.CommandsFile).
			Wrapf(err, "reading command definitions")
	}

	// Aliases from the config file win over the definitions file.
	maps.Copy(aliases, cfg.Aliases)

	var opts []command.ParserOption
	if cfg.PartialMatch {
		opts = append(opts, command.WithPartialMatch())
	}

	return &env{
		cfg:      cfg,
		parser:   command.NewParser(opts...),
		registry: registry,
		aliases:  aliases,
	}, nil
}
