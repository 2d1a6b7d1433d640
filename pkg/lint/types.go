// Package lint defines the diagnostic records produced by a linting engine
// and consumed by the formatters.
package lint

// Severity is the numeric severity code used by the linting engine.
type Severity int

const (
	// SeverityOff marks a disabled rule. The engine does not normally report it.
	SeverityOff Severity = 0

	// SeverityWarning is reported for rules configured as warnings.
	SeverityWarning Severity = 1

	// SeverityError is reported for rules configured as errors.
	SeverityError Severity = 2
)

// Message is a single diagnostic reported for a file.
//
// Line and Column are 1-based; zero means the engine did not report a
// position. An empty RuleID or Source means the field is absent.
type Message struct {
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Severity Severity `json:"severity"`
	Fatal    bool     `json:"fatal,omitempty"`
	RuleID   string   `json:"ruleId,omitempty"`
	Message  string   `json:"message"`
	Source   string   `json:"source,omitempty"`
}

// IsError reports whether the message counts as an error. Fatal messages
// (parse failures) are always errors regardless of their severity code.
func (m Message) IsError() bool {
	return m.Fatal || m.Severity == SeverityError
}

// HasColumn reports whether a column position was supplied.
func (m Message) HasColumn() bool {
	return m.Column > 0
}

// FileResult holds the messages reported for one linted file, in the order
// the engine produced them.
type FileResult struct {
	FilePath string    `json:"filePath"`
	Messages []Message `json:"messages"`
}

// HasMessages returns true if the file has anything to report.
func (r *FileResult) HasMessages() bool {
	return len(r.Messages) > 0
}
