package config

import (
	"github.com/ccollicutt/clangfmt/pkg/style"
)

// File names searched for during discovery, in order of preference.
const (
	FileName     = ".clangformatterrc"
	TOMLFileName = ".clangformatterrc.toml"
)

// NamespaceKey is the key under which the options are embedded in a linter
// configuration document.
const NamespaceKey = "clangFormatter"

// DefaultVariant is used when the options don't name one.
const DefaultVariant = VariantStandalone

// FileNames returns the discovery candidates in the order they are checked
// within each directory.
func FileNames() []string {
	return []string{FileName, TOMLFileName}
}

type variantDefaults struct {
	showRule bool
	summary  SummaryForm
	palette  func() style.Palette
}

var defaultsByVariant = map[Variant]variantDefaults{
	VariantStandalone: {
		showRule: true,
		summary:  SummarySentence,
		palette:  style.DefaultPalette,
	},
	VariantPlugin: {
		showRule: false,
		summary:  SummaryCount,
		palette:  style.PluginPalette,
	},
}

// DefaultConfig returns the resolved configuration used when no options are
// given, with color disabled.
func DefaultConfig() *RenderConfig {
	d := defaultsByVariant[DefaultVariant]
	return &RenderConfig{
		ShowRule: d.showRule,
		Summary:  d.summary,
		Variant:  DefaultVariant,
		Palette:  d.palette(),
	}
}
