// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/keyline/keyline/internal/command"
)

// NewCommandsCmd creates the commands subcommand.
func NewCommandsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List loaded command definitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommands(cmd, filter)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "glob pattern to filter command names")

	return cmd
}

func runCommands(cmd *cobra.Command, filter string) error {
	e, err := buildEnv(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), command.UserMessage(err))
		return err
	}

	var matcher glob.Glob
	if filter != "" {
		matcher, err = glob.Compile(filter)
		if err != nil {
			return fmt.Errorf("invalid filter %q: %w", filter, err)
		}
	}

	cmds := e.registry.All()
	slices.SortFunc(cmds, func(a, b *command.Command) int {
		return strings.Compare(a.Name, b.Name)
	})

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Max Split", "No Cmd Split", "Flags With Args", "Help"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	rows := 0
	for _, c := range cmds {
		if matcher != nil && !matcher.Match(c.Name) {
			continue
		}
		maxSplit := "-"
		if c.MaxSplit != nil {
			maxSplit = fmt.Sprintf("%d", *c.MaxSplit)
		}
		noSplit := ""
		if c.NoCmdSplit {
			noSplit = "yes"
		}
		table.Append([]string{
			c.Name,
			maxSplit,
			noSplit,
			strings.Join(c.FlagsWithArgs, " "),
			c.Help,
		})
		rows++
	}

	if rows == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no commands loaded")
		return nil
	}

	table.Render()

	if len(e.aliases) > 0 {
		names := slices.Sorted(maps.Keys(e.aliases))
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Aliases:")
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", name, e.aliases[name])
		}
	}

	return nil
}
