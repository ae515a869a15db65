package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bankey/account-summary/internal/domain"
)

// ConsoleFormatter prints accounts grouped by type with balances right-aligned.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *SummaryReport) ([]byte, error) {
	width := utf8.RuneCountInString(report.Total.String())
	nameWidth := len("Total")
	for _, row := range report.Rows {
		width = max(width, utf8.RuneCountInString(row.Balance.String()))
		nameWidth = max(nameWidth, utf8.RuneCountInString(row.Name))
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ACCOUNT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, t := range domain.AccountTypes {
		rows := rowsOfType(report.Rows, t)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (%s)\n", typeHeading(t), t.BalanceLabel())
		for _, row := range rows {
			fmt.Fprintf(&buf, "  %s  %s\n", padRight(row.Name, nameWidth), padLeft(row.Balance.String(), width))
		}
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  %s  %s\n", padRight("Total", nameWidth), padLeft(report.Total.String(), width))
	return buf.Bytes(), nil
}

func rowsOfType(rows []SummaryRow, t domain.AccountType) []SummaryRow {
	var out []SummaryRow
	for _, r := range rows {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func typeHeading(t domain.AccountType) string {
	switch t {
	case domain.AccountTypeBanking:
		return "Banking"
	case domain.AccountTypeCreditCard:
		return "Credit Card"
	case domain.AccountTypeInvestment:
		return "Investment"
	}
	return string(t)
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
