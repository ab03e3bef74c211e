// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"github.com/samber/oops"
)

// Error codes for parse failures.
const (
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeUnknownCommand    = "UNKNOWN_COMMAND"
	CodeInvalidDefinition = "INVALID_DEFINITION"
)

// ErrEmptyInput creates an error for input with no command to parse.
func ErrEmptyInput() error {
	return oops.Code(CodeEmptyInput).Errorf("no command given")
}

// ErrUnknownCommand creates an error for a command token that matches no
// registry entry. The attempted token is carried for display.
func ErrUnknownCommand(cmd string) error {
	return oops.Code(CodeUnknownCommand).
		With("command", cmd).
		Errorf("%s: no such command", cmd)
}

// ErrInvalidDefinition creates an error for a malformed command definition.
func ErrInvalidDefinition(name string, cause error) error {
	builder := oops.Code(CodeInvalidDefinition).With("command", name)
	if cause != nil {
		return builder.Wrap(cause)
	}
	return builder.Errorf("invalid definition for %s", name)
}

// UserMessage extracts a one-line banner message from a parse error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return err.Error()
	}

	switch oopsErr.Code() {
	case CodeEmptyInput:
		return "No command given."
	case CodeUnknownCommand:
		if cmd, ok := oopsErr.Context()["command"].(string); ok && cmd != "" {
			return cmd + ": no such command"
		}
		return "No such command."
	default:
		return err.Error()
	}
}
