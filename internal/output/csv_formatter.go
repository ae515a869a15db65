package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per account plus a trailing total row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *SummaryReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Type", "Name", "Label", "Symbol", "Integer", "Fraction", "Display"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		b := row.Balance
		record := []string{string(row.Type), row.Name, row.BalanceLabel, b.SymbolText, b.IntegerText, b.FractionText, b.String()}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	t := report.Total
	if err := w.Write([]string{"", "Total", "", t.SymbolText, t.IntegerText, t.FractionText, t.String()}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
