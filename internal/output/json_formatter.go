package output

import (
	"encoding/json"
)

// JSONFormatter serializes the report as pretty-printed JSON, keeping the
// three balance segments separate.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *SummaryReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
