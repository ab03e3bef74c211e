// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namesSource(names ...string) Source {
	r := NewRegistry()
	for _, n := range names {
		r.Register(&Command{Name: n})
	}
	return r
}

func TestCompletionMatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		names  []string
		best   bool
		want   string
	}{
		{
			name:  "unique prefix",
			input: "op",
			names: []string{"open", "quit"},
			want:  "open",
		},
		{
			name:  "substring match is not anchored to the start",
			input: "file",
			names: []string{"open-file", "quit"},
			want:  "open-file",
		},
		{
			name:  "ambiguous without best match stays unchanged",
			input: "open",
			names: []string{"open", "open-file"},
			want:  "open",
		},
		{
			name:  "ambiguous with best match picks the shortest",
			input: "op",
			names: []string{"open-file", "open"},
			best:  true,
			want:  "open",
		},
		{
			name:  "length ties break lexically",
			input: "ta",
			names: []string{"tab-b", "tab-a", "quit"},
			best:  true,
			want:  "tab-a",
		},
		{
			name:  "no match stays unchanged",
			input: "zzz",
			names: []string{"open", "quit"},
			want:  "zzz",
		},
		{
			name:  "empty input matches everything and stays unchanged",
			input: "",
			names: []string{"open", "quit"},
			want:  "",
		},
		{
			name:  "empty input with best match picks the shortest name",
			input: "",
			names: []string{"open", "quit", "up"},
			best:  true,
			want:  "up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completionMatch(tt.input, namesSource(tt.names...), tt.best)
			assert.Equal(t, tt.want, got)
		})
	}
}
