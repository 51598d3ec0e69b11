// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/compatproj/datasheet-mcp/internal/tool"
)

const serverVersion = "0.1.0"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "datasheet-mcp",
				Version: serverVersion,
			}, nil)

			mcp.AddTool(server, tool.MetadataParseDatasheet, tool.ParseDatasheet)
			mcp.AddTool(server, tool.MetadataFindCompatible, tool.FindCompatibleComponents)

			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
