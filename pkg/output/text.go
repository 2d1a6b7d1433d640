package output

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ccollicutt/clangfmt/pkg/config"
	"github.com/ccollicutt/clangfmt/pkg/lint"
	"github.com/ccollicutt/clangfmt/pkg/style"
)

// TextFormatter renders results as clang-style text:
//
//	src/app.js:3:5: error: unexpected token [no-foo]
//	  var x = ;
//	        ^
type TextFormatter struct {
	cfg     *config.RenderConfig
	baseDir string
	quiet   bool
}

// NewTextFormatter creates a text formatter. A nil cfg uses the defaults
// with color disabled.
func NewTextFormatter(cfg *config.RenderConfig, opts FormatOptions) *TextFormatter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &TextFormatter{
		cfg:     cfg,
		baseDir: opts.baseDir(),
		quiet:   opts.Quiet,
	}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the rendered report followed by a newline. Nothing is
// written when there is nothing to report.
func (f *TextFormatter) Format(_ context.Context, results []lint.FileResult, w io.Writer) error {
	out := f.Render(results)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// Render returns the report for results. The report starts with a blank
// line and ends with the summary line, without a trailing newline. If no
// file has any message the result is the empty string.
func (f *TextFormatter) Render(results []lint.FileResult) string {
	paint := f.cfg.Painter()
	summary := newSummary()

	var b strings.Builder
	b.WriteString("\n")

	for i := range results {
		result := &results[i]
		if !result.HasMessages() {
			continue
		}

		file := paint.Paint(style.RoleFile, f.relPath(result.FilePath))
		for _, m := range result.Messages {
			severity := summary.add(m)
			if !f.quiet {
				f.writeMessage(&b, paint, file, severity, m)
			}
		}
	}

	if summary.Total == 0 {
		return ""
	}

	if !f.quiet {
		b.WriteString("\n")
	}
	b.WriteString(paint.Paint(summary.Severity, summaryLine(f.cfg.Summary, summary)))

	return b.String()
}

func (f *TextFormatter) writeMessage(b *strings.Builder, paint *style.Painter, file string, severity style.Role, m lint.Message) {
	sep := paint.Paint(style.RoleSeparator, ":")

	location := ""
	if m.HasColumn() {
		location = paint.Paint(style.RoleLocation, fmt.Sprintf("%d:%d", m.Line, m.Column)) + sep
	}

	b.WriteString(file)
	b.WriteString(sep)
	b.WriteString(location)
	b.WriteString(" ")
	b.WriteString(paint.Paint(severity, string(severity)))
	b.WriteString(sep)
	b.WriteString(" ")
	b.WriteString(paint.Paint(style.RoleMessage, m.Message))

	if f.cfg.ShowRule && m.RuleID != "" {
		b.WriteString(paint.Paint(style.RoleRule, " ["+m.RuleID+"]"))
	}

	if m.Source != "" {
		b.WriteString("\n")
		b.WriteString(paint.Paint(style.RoleSource, m.Source))
		b.WriteString("\n")
		b.WriteString(caretPadding(m.Source, m.Column))
		b.WriteString(paint.Paint(style.RoleCaret, "^"))
	}

	b.WriteString("\n")
}

// relPath shows path relative to the base directory, falling back to the
// path as given.
func (f *TextFormatter) relPath(path string) string {
	if f.baseDir == "" {
		return path
	}
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(f.baseDir, abs)
	}
	rel, err := filepath.Rel(f.baseDir, abs)
	if err != nil {
		return path
	}
	return rel
}

// caretPadding replaces each of the first column-1 characters of source
// with a space. The count is clamped to the length of the source.
func caretPadding(source string, column int) string {
	n := column - 1
	if n <= 0 {
		return ""
	}
	if runes := []rune(source); n > len(runes) {
		n = len(runes)
	}
	return strings.Repeat(" ", n)
}

// summaryLine words the summary in the configured form.
func summaryLine(form config.SummaryForm, s Summary) string {
	if form == config.SummaryCount {
		return fmt.Sprintf("✖ %d problem%s (%d error%s, %d warning%s)",
			s.Total, pluralize(s.Total),
			s.Errors, pluralize(s.Errors),
			s.Warnings, pluralize(s.Warnings))
	}

	var clauses []string
	if s.Warnings > 0 {
		clauses = append(clauses, fmt.Sprintf("%d warning%s", s.Warnings, pluralize(s.Warnings)))
	}
	if s.Errors > 0 {
		clauses = append(clauses, fmt.Sprintf("%d error%s", s.Errors, pluralize(s.Errors)))
	}
	return strings.Join(clauses, " and ") + " found."
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
