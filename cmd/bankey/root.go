package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bankey/account-summary/internal/currency"
)

type rootOptions struct {
	verbose bool
	logger  currency.Logger
	sync    func() error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: currency.NopLogger{}, sync: func() error { return nil }}

	cmd := &cobra.Command{
		Use:           "bankey",
		Short:         "Format account balances into styled currency segments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			sugar := l.Sugar()
			opts.logger = sugar
			opts.sync = sugar.Sync
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newFormatCmd(opts))
	cmd.AddCommand(newSummaryCmd(opts))
	cmd.AddCommand(newExampleConfigCmd())
	return cmd
}
