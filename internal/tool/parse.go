// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/compatproj/datasheet-mcp/internal/datasheet"
	"github.com/compatproj/datasheet-mcp/internal/datasheet/templates"
)

// MetadataParseDatasheet describes the parse_datasheet tool.
var MetadataParseDatasheet = &mcp.Tool{
	Name: "parse_datasheet",
	Description: "Parse free-text component datasheet content and extract the operating " +
		"voltage and temperature ranges. Each range is either a closed interval " +
		"{low, high} or null when the document carried no single trustworthy value " +
		"(no recognizable range, or several ranges that disagree). A component with " +
		"a null range on either axis is never considered compatible with any " +
		"operating condition.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Decoded text content of the datasheet to parse",
			},
			"identifier": map[string]interface{}{
				"type":        "string",
				"description": "Optional component identifier (file name, part number, etc.) carried into the parsed record.",
			},
		},
	},
}

// InputParseDatasheet is the input for the ParseDatasheet tool.
type InputParseDatasheet struct {
	Content    string `json:"content"`
	Identifier string `json:"identifier"`
}

// OutputParseDatasheet is the output for the ParseDatasheet tool.
type OutputParseDatasheet struct {
	// Identifier is the component identifier the record was filed under.
	Identifier string `json:"identifier"`
	// VoltageRange is the consolidated voltage range, or null if unknown.
	VoltageRange datasheet.Range `json:"voltage_range"`
	// TemperatureRange is the consolidated temperature range, or null if unknown.
	TemperatureRange datasheet.Range `json:"temperature_range"`
	// VoltageCandidates is the number of candidate voltage ranges found before consolidation.
	VoltageCandidates int `json:"voltage_candidates"`
	// TemperatureCandidates is the number of candidate temperature ranges found before consolidation.
	TemperatureCandidates int `json:"temperature_candidates"`
}

// defaultParser builds a Parser with all default templates registered.
// Template order matters: prefixed (more specific) templates are registered
// before bare ones to keep candidate ordering deterministic.
func defaultParser() *datasheet.Parser {
	return datasheet.NewParser(templates.Default())
}

// ParseDatasheet runs the extraction engine over the provided document and
// returns the consolidated ranges.
func ParseDatasheet(_ context.Context, _ *mcp.CallToolRequest, input InputParseDatasheet) (*mcp.CallToolResult, OutputParseDatasheet, error) {
	if input.Content == "" {
		return nil, OutputParseDatasheet{}, fmt.Errorf("content is required")
	}

	identifier := input.Identifier
	if identifier == "" {
		identifier = "unknown"
	}

	result := defaultParser().ParseWithDiagnostics(identifier, input.Content)
	return nil, OutputParseDatasheet{
		Identifier:            result.Record.Identifier,
		VoltageRange:          result.Record.Voltage,
		TemperatureRange:      result.Record.Temperature,
		VoltageCandidates:     len(result.VoltageCandidates),
		TemperatureCandidates: len(result.TemperatureCandidates),
	}, nil
}
