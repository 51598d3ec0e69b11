// SPDX-License-Identifier: Apache-2.0

// Command datasheet-mcp answers component compatibility queries from
// free-text datasheets, either interactively or as an MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "datasheet-mcp",
		Short:         "Component compatibility checker over free-text datasheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to YAML configuration file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable extraction diagnostics")

	root.AddCommand(newServeCmd())
	root.AddCommand(newCheckCmd(flags))
	return root
}
