// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, SchemaID, schema["$id"])
	assert.Equal(t, "Keyline Command Definitions", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "commands")
	assert.Contains(t, props, "aliases")
}

func TestValidateSchema(t *testing.T) {
	t.Cleanup(ResetSchemaCache)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid definitions",
			data: validDefs,
		},
		{
			name:    "empty data",
			data:    "",
			wantErr: true,
		},
		{
			name:    "commands must be a list",
			data:    "commands: open",
			wantErr: true,
		},
		{
			name:    "command entries need a name",
			data:    "commands:\n  - help: nameless",
			wantErr: true,
		},
		{
			name:    "max-split must be an integer",
			data:    "commands:\n  - name: open\n    max-split: two",
			wantErr: true,
		},
		{
			name:    "flags-with-args must be strings",
			data:    "commands:\n  - name: open\n    flags-with-args: [1, 2]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
