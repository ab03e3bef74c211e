// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition declares one command in a commands.yaml file.
type Definition struct {
	Name          string   `yaml:"name" json:"name"`
	Help          string   `yaml:"help,omitempty" json:"help,omitempty"`
	Usage         string   `yaml:"usage,omitempty" json:"usage,omitempty"`
	MaxSplit      *int     `yaml:"max-split,omitempty" json:"max-split,omitempty"`
	NoCmdSplit    bool     `yaml:"no-cmd-split,omitempty" json:"no-cmd-split,omitempty"`
	FlagsWithArgs []string `yaml:"flags-with-args,omitempty" json:"flags-with-args,omitempty"`
}

// DefinitionFile represents a commands.yaml file.
type DefinitionFile struct {
	Commands []Definition      `yaml:"commands" json:"commands"`
	Aliases  map[string]string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// maxNameLength is the maximum allowed length for command names.
const maxNameLength = 64

// namePattern validates command names: must start with a lowercase
// letter, followed by lowercase letters, digits, or hyphens, and cannot
// end with a hyphen. Single character names are allowed.
var namePattern = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

// ParseDefinitions parses and validates a commands.yaml file.
func ParseDefinitions(data []byte) (*DefinitionFile, error) {
	if len(data) == 0 {
		return nil, ErrInvalidDefinition("", fmt.Errorf("definition data is empty"))
	}

	var f DefinitionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, ErrInvalidDefinition("", fmt.Errorf("invalid YAML: %w", err))
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks definition constraints.
func (f *DefinitionFile) Validate() error {
	if len(f.Commands) == 0 {
		return ErrInvalidDefinition("", fmt.Errorf("no commands declared"))
	}

	seen := make(map[string]bool, len(f.Commands))
	for i := range f.Commands {
		d := &f.Commands[i]
		if err := d.validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return ErrInvalidDefinition(d.Name, fmt.Errorf("duplicate command name"))
		}
		seen[d.Name] = true
	}

	for alias := range f.Aliases {
		if strings.ContainsAny(alias, " \t") {
			return ErrInvalidDefinition(alias, fmt.Errorf("alias names must be a single word"))
		}
	}
	return nil
}

func (d *Definition) validate() error {
	if d.Name == "" || !namePattern.MatchString(d.Name) {
		return ErrInvalidDefinition(d.Name, fmt.Errorf(
			"name %q must start with a-z, contain only a-z, 0-9, hyphens, and not end with a hyphen", d.Name))
	}
	if len(d.Name) > maxNameLength {
		return ErrInvalidDefinition(d.Name, fmt.Errorf(
			"name must be %d characters or less, got %d", maxNameLength, len(d.Name)))
	}
	if d.MaxSplit != nil && *d.MaxSplit < 0 {
		return ErrInvalidDefinition(d.Name, fmt.Errorf("max-split must be non-negative"))
	}
	for _, flag := range d.FlagsWithArgs {
		if !strings.HasPrefix(flag, "-") {
			return ErrInvalidDefinition(d.Name, fmt.Errorf("flag %q must start with -", flag))
		}
	}
	return nil
}

// Command converts a validated definition into registry metadata.
func (d *Definition) Command() *Command {
	var maxSplit *int
	if d.MaxSplit != nil {
		v := *d.MaxSplit
		maxSplit = &v
	}
	return &Command{
		Name:          d.Name,
		Help:          d.Help,
		Usage:         d.Usage,
		MaxSplit:      maxSplit,
		NoCmdSplit:    d.NoCmdSplit,
		FlagsWithArgs: append([]string(nil), d.FlagsWithArgs...),
		Source:        "definitions",
	}
}
