// Package config provides configuration discovery, loading and resolution
// for the clangfmt formatters.
package config

import (
	"github.com/ccollicutt/clangfmt/pkg/style"
)

// SummaryForm selects the wording of the trailing summary line.
type SummaryForm string

const (
	// SummarySentence renders "2 warnings and 1 error found.", leaving out
	// clauses whose count is zero.
	SummarySentence SummaryForm = "sentence"

	// SummaryCount renders "✖ 3 problems (1 error, 2 warnings)" and always
	// shows both counts.
	SummaryCount SummaryForm = "count"
)

// Variant selects a set of defaults.
type Variant string

const (
	// VariantStandalone shows rule ids and uses the sentence summary.
	VariantStandalone Variant = "standalone"

	// VariantPlugin hides rule ids and uses the count summary, matching the
	// formatter that shipped as a linter plugin.
	VariantPlugin Variant = "plugin"
)

// Options is the configuration as written by the user, either in a
// .clangformatterrc file or inline in a linter configuration. Every field
// is optional; unset fields fall back to the variant defaults.
type Options struct {
	// Colorize forces color on or off. When unset, color is used if the
	// output is a terminal.
	Colorize *bool `json:"colorize,omitempty" yaml:"colorize,omitempty" toml:"colorize,omitempty"`

	// ShowRule appends the rule id to each message.
	ShowRule *bool `json:"showRule,omitempty" yaml:"showRule,omitempty" toml:"showRule,omitempty"`

	// Summary selects the summary wording (sentence or count).
	Summary SummaryForm `json:"summary,omitempty" yaml:"summary,omitempty" toml:"summary,omitempty"`

	// Variant selects the defaults for ShowRule, Summary and the palette.
	Variant Variant `json:"variant,omitempty" yaml:"variant,omitempty" toml:"variant,omitempty"`

	// Colors maps role names to dotted style paths, e.g. {"file": "blue.underline"}.
	Colors map[string]string `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
}

// RenderConfig is the fully resolved configuration handed to a renderer.
type RenderConfig struct {
	Colorize bool
	ShowRule bool
	Summary  SummaryForm
	Variant  Variant
	Palette  style.Palette

	// Source is the file the options were loaded from, empty when they were
	// supplied directly or nothing was found.
	Source string
}

// Painter returns a styling context for one render.
func (c *RenderConfig) Painter() *style.Painter {
	return style.NewPainter(c.Palette, c.Colorize)
}

// Bool returns a pointer to b, for building Options in code.
func Bool(b bool) *bool {
	return &b
}
