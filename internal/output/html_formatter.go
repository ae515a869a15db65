package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter renders the summary with each balance segment in its own
// span so the symbol and cents can be styled smaller than the dollars.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/summary.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("summary").Funcs(template.FuncMap{
	"heading": typeHeading,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *SummaryReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
