// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepl executes the repl subcommand feeding input on stdin.
func runReplCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	configFile = ""
	logFormat = "text"

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"repl"}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestReplCmd_ParsesLines(t *testing.T) {
	defs := writeDefinitions(t, testDefinitions)

	out, _, err := runReplCLI(t, "open foo\nbind a b\nexit\n",
		"--commands-file", defs)
	require.NoError(t, err)

	assert.Contains(t, out, `open ["foo"]`)
	assert.Contains(t, out, `bind ["a" "b"]`)
}

func TestReplCmd_ErrorDoesNotStopSession(t *testing.T) {
	defs := writeDefinitions(t, testDefinitions)

	out, errOut, err := runReplCLI(t, "nope\nopen foo\n",
		"--commands-file", defs)
	require.NoError(t, err)

	assert.Contains(t, errOut, "nope")
	assert.Contains(t, out, `open ["foo"]`)
}

func TestReplCmd_EOFEndsSession(t *testing.T) {
	defs := writeDefinitions(t, testDefinitions)

	_, _, err := runReplCLI(t, "", "--commands-file", defs)
	require.NoError(t, err)
}

func TestReplCmd_QuitKeyword(t *testing.T) {
	defs := writeDefinitions(t, testDefinitions)

	out, _, err := runReplCLI(t, "quit\nopen foo\n", "--commands-file", defs)
	require.NoError(t, err)

	assert.NotContains(t, out, `open ["foo"]`)
}
