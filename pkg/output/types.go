// Package output provides the report formatters for lint results.
package output

import (
	"github.com/ccollicutt/clangfmt/pkg/lint"
	"github.com/ccollicutt/clangfmt/pkg/style"
)

// Summary provides aggregate counts over one set of results.
type Summary struct {
	// Total is the number of messages reported. Always Errors + Warnings.
	Total int `json:"total"`

	// Errors counts fatal messages and messages with error severity.
	Errors int `json:"errors"`

	// Warnings counts every other message.
	Warnings int `json:"warnings"`

	// Severity is the role used to style the summary line. It becomes
	// RoleError as soon as one error is seen and never goes back.
	Severity style.Role `json:"severity"`
}

func newSummary() Summary {
	return Summary{Severity: style.RoleWarning}
}

// add counts one message and returns the role of its severity word.
func (s *Summary) add(m lint.Message) style.Role {
	s.Total++
	if m.IsError() {
		s.Errors++
		s.Severity = style.RoleError
		return style.RoleError
	}
	s.Warnings++
	return style.RoleWarning
}

// Summarize counts the messages of all results.
func Summarize(results []lint.FileResult) Summary {
	s := newSummary()
	for _, r := range results {
		for _, m := range r.Messages {
			s.add(m)
		}
	}
	return s
}

// HasErrors returns true if any error was counted.
func (s Summary) HasErrors() bool {
	return s.Errors > 0
}
