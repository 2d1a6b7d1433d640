package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/clangfmt/pkg/lint"
)

// JSONReport is the document written by JSONFormatter.
type JSONReport struct {
	Results []lint.FileResult `json:"results,omitempty"`
	Summary Summary           `json:"summary"`
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the results and their summary as JSON. Files without
// messages are left out, as they are in the text report.
func (f *JSONFormatter) Format(_ context.Context, results []lint.FileResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	report := JSONReport{Summary: Summarize(results)}

	if !f.opts.Quiet {
		for _, r := range results {
			if r.HasMessages() {
				report.Results = append(report.Results, r)
			}
		}
	}

	return encoder.Encode(report)
}
