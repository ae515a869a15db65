package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bankey/account-summary/internal/currency"
	"github.com/bankey/account-summary/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// SummaryRow is one account with its balance already decomposed.
type SummaryRow struct {
	Type         domain.AccountType         `json:"type"`
	Name         string                     `json:"name"`
	BalanceLabel string                     `json:"balance_label"`
	Balance      currency.FormattedCurrency `json:"balance"`
}

// SummaryReport is what every Formatter renders.
type SummaryReport struct {
	Rows  []SummaryRow               `json:"accounts"`
	Total currency.FormattedCurrency `json:"total"`
}

// BuildSummaryReport decomposes every balance with d. The first balance that
// cannot be formatted aborts the build.
func BuildSummaryReport(summary domain.AccountSummary, d *currency.Decomposer) (*SummaryReport, error) {
	report := &SummaryReport{Rows: make([]SummaryRow, 0, len(summary.Accounts))}
	for _, a := range summary.Accounts {
		balance, err := d.Format(a.Balance)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", a.Name, err)
		}
		report.Rows = append(report.Rows, SummaryRow{
			Type:         a.Type,
			Name:         a.Name,
			BalanceLabel: a.Type.BalanceLabel(),
			Balance:      balance,
		})
	}
	total, err := d.Format(summary.Total())
	if err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}
	report.Total = total
	return report, nil
}

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *SummaryReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
