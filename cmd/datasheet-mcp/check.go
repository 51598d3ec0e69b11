// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/compatproj/datasheet-mcp/internal/catalog"
	"github.com/compatproj/datasheet-mcp/internal/config"
	"github.com/compatproj/datasheet-mcp/internal/datasheet"
	"github.com/compatproj/datasheet-mcp/internal/datasheet/templates"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "check [voltage temperature]",
		Short: "Find components compatible with an operating voltage and temperature",
		Long: "Parses every datasheet in the configured directory and lists the components " +
			"able to operate at the given voltage (V) and temperature (°C). With no " +
			"arguments the values are read from an interactive prompt.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts either no arguments or exactly two: [voltage temperature]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.DatasheetDir = dir
			}
			verbose := flags.verbose || cfg.Verbose

			logger := zap.NewNop()
			if verbose {
				logger, err = zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				defer logger.Sync()
			}

			parser := datasheet.NewParser(templates.Default(), datasheet.WithLogger(logger))
			loader := catalog.NewLoader(parser,
				catalog.WithExtensions(cfg.Extensions...),
				catalog.WithLogger(logger))

			cat, stats, err := loader.LoadDir(cfg.DatasheetDir)
			if err != nil {
				return err
			}
			if cat.Len() == 0 {
				return fmt.Errorf("no datasheets found in %s", cfg.DatasheetDir)
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Parsed %d datasheets: %d fully ranged, %d conflicting, %d without a valid range\n",
					stats.TotalFiles, stats.FullyRanged, stats.Conflicting, stats.NoRange)
			}

			voltage, temperature, err := operatingPoint(cmd, args)
			if err != nil {
				return err
			}

			matches := cat.FindCompatible(voltage, temperature)
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "No compatible components found.")
				return nil
			}
			fmt.Fprintln(out, "Compatible components:")
			for _, record := range matches {
				fmt.Fprintf(out, "- %s\n", record.Identifier)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "datasheet directory (overrides configuration)")
	return cmd
}

// operatingPoint takes the query values from the arguments, or prompts for
// them when none were given. Non-numeric input is a user error, not a parse
// degradation.
func operatingPoint(cmd *cobra.Command, args []string) (voltage, temperature float64, err error) {
	if len(args) == 2 {
		voltage, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid voltage %q: must be numeric", args[0])
		}
		temperature, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid temperature %q: must be numeric", args[1])
		}
		return voltage, temperature, nil
	}

	reader := bufio.NewScanner(cmd.InOrStdin())
	voltage, err = promptFloat(cmd, reader, "Enter operating voltage (V): ")
	if err != nil {
		return 0, 0, err
	}
	temperature, err = promptFloat(cmd, reader, "Enter operating temperature (°C): ")
	if err != nil {
		return 0, 0, err
	}
	return voltage, temperature, nil
}

func promptFloat(cmd *cobra.Command, reader *bufio.Scanner, prompt string) (float64, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	if !reader.Scan() {
		if err := reader.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("no input")
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(reader.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: must be numeric", reader.Text())
	}
	return value, nil
}
