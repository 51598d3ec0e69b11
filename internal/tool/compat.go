// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/compatproj/datasheet-mcp/internal/catalog"
	"github.com/compatproj/datasheet-mcp/internal/datasheet"
)

// MetadataFindCompatible describes the find_compatible_components tool.
var MetadataFindCompatible = &mcp.Tool{
	Name: "find_compatible_components",
	Description: "Parse a set of component datasheets and return the components able to " +
		"operate at the given voltage and temperature. A component is compatible " +
		"only when both values fall inside its extracted ranges (boundaries " +
		"included); components whose documents yielded no trustworthy range on " +
		"either axis are never returned. Results preserve document input order.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"documents", "voltage", "temperature"},
		"properties": map[string]interface{}{
			"documents": map[string]interface{}{
				"type":        "array",
				"description": "Datasheets to parse, in the order results should be reported",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"content"},
					"properties": map[string]interface{}{
						"identifier": map[string]interface{}{
							"type":        "string",
							"description": "Component identifier used in the result list.",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "Decoded text content of the datasheet.",
						},
					},
				},
			},
			"voltage": map[string]interface{}{
				"type":        "number",
				"description": "Operating voltage in volts",
			},
			"temperature": map[string]interface{}{
				"type":        "number",
				"description": "Operating temperature in degrees Celsius",
			},
		},
	},
}

// DocumentInput is one datasheet in a compatibility query.
type DocumentInput struct {
	Identifier string `json:"identifier"`
	Content    string `json:"content"`
}

// InputFindCompatible is the input for the FindCompatibleComponents tool.
type InputFindCompatible struct {
	Documents   []DocumentInput `json:"documents"`
	Voltage     float64         `json:"voltage"`
	Temperature float64         `json:"temperature"`
}

// OutputFindCompatible is the output for the FindCompatibleComponents tool.
type OutputFindCompatible struct {
	// Compatible lists the identifiers of matching components in input order.
	Compatible []string `json:"compatible"`
	// Records holds the parsed record for every input document, in input
	// order, so callers can distinguish "incompatible" from "insufficient data".
	Records []datasheet.Record `json:"records"`
}

// FindCompatibleComponents parses every document, builds an in-memory
// catalog, and filters it by the queried operating conditions.
func FindCompatibleComponents(_ context.Context, _ *mcp.CallToolRequest, input InputFindCompatible) (*mcp.CallToolResult, OutputFindCompatible, error) {
	if len(input.Documents) == 0 {
		return nil, OutputFindCompatible{}, fmt.Errorf("documents are required")
	}

	parser := defaultParser()
	cat := catalog.New()
	for i, doc := range input.Documents {
		if doc.Content == "" {
			return nil, OutputFindCompatible{}, fmt.Errorf("document %d: content is required", i)
		}
		identifier := doc.Identifier
		if identifier == "" {
			identifier = fmt.Sprintf("document-%d", i)
		}
		cat.Add(parser.Parse(identifier, doc.Content))
	}

	matches := cat.FindCompatible(input.Voltage, input.Temperature)
	compatible := make([]string, 0, len(matches))
	for _, record := range matches {
		compatible = append(compatible, record.Identifier)
	}

	return nil, OutputFindCompatible{
		Compatible: compatible,
		Records:    cat.Records(),
	}, nil
}
