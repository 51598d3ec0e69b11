// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	regulatorSheet = "Supply voltage: 2.7V to 5.5V\nOperating temperature: -40°C to +85°C\n"
	sensorSheet    = "VDD: 1.8V to 3.6V\nTemperature range: -20°C to +70°C\n"
	conflictSheet  = "3.15V to 3.45V Operation\nElsewhere: 3.0V to 3.6V\n-40°C to +85°C\n"
)

func TestFindCompatibleComponents(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputFindCompatible
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputFindCompatible)
	}{
		{
			name:        "no documents returns error",
			input:       InputFindCompatible{Voltage: 3.3, Temperature: 25},
			wantErr:     true,
			errContains: "documents are required",
		},
		{
			name: "document with empty content returns error",
			input: InputFindCompatible{
				Documents:   []DocumentInput{{Identifier: "empty.txt"}},
				Voltage:     3.3,
				Temperature: 25,
			},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name: "matches preserve input order",
			input: InputFindCompatible{
				Documents: []DocumentInput{
					{Identifier: "regulator.txt", Content: regulatorSheet},
					{Identifier: "sensor.txt", Content: sensorSheet},
				},
				Voltage:     3.3,
				Temperature: 25,
			},
			validateOutput: func(t *testing.T, output OutputFindCompatible) {
				assert.Equal(t, []string{"regulator.txt", "sensor.txt"}, output.Compatible)
				require.Len(t, output.Records, 2)
			},
		},
		{
			name: "voltage outside range excludes the component",
			input: InputFindCompatible{
				Documents: []DocumentInput{
					{Identifier: "regulator.txt", Content: regulatorSheet},
					{Identifier: "sensor.txt", Content: sensorSheet},
				},
				Voltage:     5.0,
				Temperature: 25,
			},
			validateOutput: func(t *testing.T, output OutputFindCompatible) {
				assert.Equal(t, []string{"regulator.txt"}, output.Compatible)
			},
		},
		{
			name: "conflicting datasheet is never compatible",
			input: InputFindCompatible{
				Documents: []DocumentInput{
					{Identifier: "osc.txt", Content: conflictSheet},
				},
				Voltage:     3.3,
				Temperature: 25,
			},
			validateOutput: func(t *testing.T, output OutputFindCompatible) {
				assert.Empty(t, output.Compatible)
				// The record is still reported so callers can flag insufficient data.
				require.Len(t, output.Records, 1)
				assert.False(t, output.Records[0].Voltage.IsKnown())
				assert.True(t, output.Records[0].Temperature.IsKnown())
			},
		},
		{
			name: "boundary values are compatible",
			input: InputFindCompatible{
				Documents: []DocumentInput{
					{Identifier: "regulator.txt", Content: regulatorSheet},
				},
				Voltage:     2.7,
				Temperature: 85,
			},
			validateOutput: func(t *testing.T, output OutputFindCompatible) {
				assert.Equal(t, []string{"regulator.txt"}, output.Compatible)
			},
		},
		{
			name: "no matches is a valid empty result",
			input: InputFindCompatible{
				Documents: []DocumentInput{
					{Identifier: "regulator.txt", Content: regulatorSheet},
				},
				Voltage:     24,
				Temperature: 25,
			},
			validateOutput: func(t *testing.T, output OutputFindCompatible) {
				assert.Empty(t, output.Compatible)
			},
		},
		{
			name: "missing identifiers default by position",
			input: InputFindCompatible{
				Documents: []DocumentInput{
					{Content: regulatorSheet},
				},
				Voltage:     3.3,
				Temperature: 25,
			},
			validateOutput: func(t *testing.T, output OutputFindCompatible) {
				assert.Equal(t, []string{"document-0"}, output.Compatible)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := FindCompatibleComponents(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}
