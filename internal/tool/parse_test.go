// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatasheet(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputParseDatasheet
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputParseDatasheet)
	}{
		{
			name:        "empty content returns error",
			input:       InputParseDatasheet{Content: ""},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name: "both ranges extracted",
			input: InputParseDatasheet{
				Content:    "Supply voltage: 2.7V to 5.5V\nOperating temperature: -40°C to +85°C\n",
				Identifier: "ldo-3301.txt",
			},
			validateOutput: func(t *testing.T, output OutputParseDatasheet) {
				assert.Equal(t, "ldo-3301.txt", output.Identifier)
				require.True(t, output.VoltageRange.IsKnown())
				assert.InDelta(t, 2.7, output.VoltageRange.Low(), 1e-9)
				assert.InDelta(t, 5.5, output.VoltageRange.High(), 1e-9)
				require.True(t, output.TemperatureRange.IsKnown())
				assert.InDelta(t, -40, output.TemperatureRange.Low(), 1e-9)
				assert.InDelta(t, 85, output.TemperatureRange.High(), 1e-9)
				assert.Equal(t, 1, output.VoltageCandidates)
				assert.Equal(t, 1, output.TemperatureCandidates)
			},
		},
		{
			name: "conflicting voltage ranges degrade to unknown",
			input: InputParseDatasheet{
				Content:    "3.15V to 3.45V Operation\nElsewhere: 3.0V to 3.6V\n",
				Identifier: "osc-77.txt",
			},
			validateOutput: func(t *testing.T, output OutputParseDatasheet) {
				assert.False(t, output.VoltageRange.IsKnown())
				assert.Equal(t, 2, output.VoltageCandidates, "both conflicting candidates are counted")
				assert.False(t, output.TemperatureRange.IsKnown())
				assert.Zero(t, output.TemperatureCandidates)
			},
		},
		{
			name: "unparseable text degrades gracefully, no error",
			input: InputParseDatasheet{
				Content:    "General purpose logic device, 48-pin package",
				Identifier: "glue-logic.txt",
			},
			validateOutput: func(t *testing.T, output OutputParseDatasheet) {
				assert.False(t, output.VoltageRange.IsKnown())
				assert.False(t, output.TemperatureRange.IsKnown())
			},
		},
		{
			name: "identifier is optional and defaults gracefully",
			input: InputParseDatasheet{
				Content: "Supply voltage: 1.8V to 3.6V\n",
				// No Identifier
			},
			validateOutput: func(t *testing.T, output OutputParseDatasheet) {
				assert.Equal(t, "unknown", output.Identifier)
				assert.True(t, output.VoltageRange.IsKnown())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := ParseDatasheet(ctx, req, tt.input)

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
