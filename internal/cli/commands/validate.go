package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clangfmt/pkg/config"
	"github.com/ccollicutt/clangfmt/pkg/style"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a clangfmt configuration file without rendering anything.

Checks:
  - JSON, YAML or TOML syntax
  - summary and variant values
  - Color overrides (warning only, unknown styles fall back to the default)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Validating %s...\n", configPath)

	opts, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(out, "\nConfiguration valid!\n")
	_, _ = fmt.Fprintf(out, "  colorize: %s\n", describeBool(opts.Colorize, "auto"))
	_, _ = fmt.Fprintf(out, "  showRule: %s\n", describeBool(opts.ShowRule, "default"))
	_, _ = fmt.Fprintf(out, "  summary:  %s\n", describeString(string(opts.Summary)))
	_, _ = fmt.Fprintf(out, "  variant:  %s\n", describeString(string(opts.Variant)))

	warnings := checkColorOverrides(opts.Colors)
	for _, w := range warnings {
		_, _ = fmt.Fprintf(out, "\nWarning: %s", w)
	}
	if len(warnings) > 0 {
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

// checkColorOverrides lists overrides that will be ignored when rendering.
func checkColorOverrides(colors map[string]string) []string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	var warnings []string
	for _, name := range names {
		if !style.IsRole(name) {
			warnings = append(warnings, fmt.Sprintf("colors.%s: unknown role, ignored", name))
			continue
		}
		if _, ok := style.Parse(colors[name]); !ok {
			warnings = append(warnings, fmt.Sprintf("colors.%s: unknown style %q, default kept", name, colors[name]))
		}
	}
	return warnings
}

func describeBool(b *bool, unset string) string {
	if b == nil {
		return unset
	}
	return fmt.Sprintf("%t", *b)
}

func describeString(s string) string {
	if s == "" {
		return "default"
	}
	return s
}
