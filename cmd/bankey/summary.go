package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bankey/account-summary/internal/config"
	"github.com/bankey/account-summary/internal/currency"
	"github.com/bankey/account-summary/internal/output"
)

func newSummaryCmd(root *rootOptions) *cobra.Command {
	var configPath, format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Render the account summary",
		Long: "Render the account summary. Without --config the demo accounts are used.\n" +
			"Formats: " + strings.Join(output.AvailableFormatterNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg := parser.CreateExampleConfiguration()
			if configPath != "" {
				loaded, err := parser.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				root.logger.Infof("loaded %d accounts from %s", len(cfg.Accounts), configPath)
			}

			d := currency.NewDecomposer(currency.WithOptions(cfg.Formatting.Options()))
			d.SetLogger(root.logger)

			report, err := output.BuildSummaryReport(cfg.Summary(), d)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}
			return output.GenerateReport(cmd.OutOrStdout(), report, format)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with formatting options and accounts")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config <path>",
		Short: "Write an example YAML configuration with the demo accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewInputParser().SaveExampleConfiguration(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
