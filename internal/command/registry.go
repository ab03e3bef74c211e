// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"log/slog"
	"sync"
)

// Registry manages command registration and lookup.
// It is thread-safe for concurrent access and implements Source.
type Registry struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command to the registry.
// If a command with the same name exists, it is overwritten and a warning
// is logged: last registered wins.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.commands[cmd.Name]; ok {
		slog.Warn("command conflict: overwriting existing command",
			"command", cmd.Name,
			"previous_source", existing.Source,
			"new_source", cmd.Source)
	}

	r.commands[cmd.Name] = cmd
}

// Lookup retrieves a command by exact name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns all registered command names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}

// All returns all registered commands.
// The returned slice is a copy and safe to modify.
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]*Command, 0, len(r.commands))
	for _, c := range r.commands {
		cmds = append(cmds, c)
	}
	return cmds
}

// LoadDefinitions registers every command declared in defs.
// Definitions must have been validated beforehand (see ParseDefinitions).
func (r *Registry) LoadDefinitions(defs *DefinitionFile) {
	for i := range defs.Commands {
		r.Register(defs.Commands[i].Command())
	}
}
