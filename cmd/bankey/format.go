package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankey/account-summary/internal/currency"
	money "github.com/bankey/account-summary/pkg/decimal"
)

type formatFlags struct {
	symbol           string
	grouping         string
	decimalSeparator string
	places           int
	sign             string
	asJSON           bool
}

func newFormatCmd(root *rootOptions) *cobra.Command {
	defaults := currency.DefaultOptions()
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format <amount>...",
		Short: "Split amounts into symbol, integer and fraction segments",
		Example: `  bankey format 929466.23
  bankey format --json -- -50.835
  bankey format --symbol € --grouping . --decimal-separator , 1234.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placement, err := currency.ParseSignPlacement(flags.sign)
			if err != nil {
				return err
			}
			d := currency.NewDecomposer(
				currency.WithSymbol(flags.symbol),
				currency.WithGroupingSeparator(flags.grouping),
				currency.WithDecimalSeparator(flags.decimalSeparator),
				currency.WithDecimalPlaces(flags.places),
				currency.WithSignPlacement(placement),
			)
			d.SetLogger(root.logger)

			results := make([]currency.FormattedCurrency, 0, len(args))
			for _, arg := range args {
				amount, err := money.NewMoneyFromString(arg)
				if err != nil {
					return fmt.Errorf("%w: %q is not a decimal number", currency.ErrInvalidAmount, arg)
				}
				f, err := d.Format(amount)
				if err != nil {
					return err
				}
				results = append(results, f)
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, f := range results {
				fmt.Fprintln(out, f.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.symbol, "symbol", defaults.Symbol, "currency symbol")
	cmd.Flags().StringVar(&flags.grouping, "grouping", defaults.GroupingSeparator, "thousands grouping separator (empty disables grouping)")
	cmd.Flags().StringVar(&flags.decimalSeparator, "decimal-separator", defaults.DecimalSeparator, "separator between integer and fraction")
	cmd.Flags().IntVar(&flags.places, "places", defaults.DecimalPlaces, "number of fraction digits")
	cmd.Flags().StringVar(&flags.sign, "sign", defaults.SignPlacement.String(), "minus sign placement: integer, before-symbol or after-symbol")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print segments as JSON")
	return cmd
}
