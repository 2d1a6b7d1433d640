package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clangfmt/pkg/config"
	"github.com/ccollicutt/clangfmt/pkg/style"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose [config-file]",
		Short: "Show which configuration would be used and why",
		Long: `Diagnose configuration issues.

Without an argument the configuration file is discovered the same way the
render command does it. The command reports:
- Which file was found, if any
- Whether it parses
- Color overrides that will be ignored
- Whether standard output supports color
- The settings a render would use

Example:
  clangfmt diagnose
  clangfmt diagnose -v .clangformatterrc  # verbose output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDiagnose(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, w io.Writer, configPath string, opts *DiagnoseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	resolver, err := config.NewResolver(w, nil)
	if err != nil {
		return err
	}

	results := []DiagnosticResult{}

	// 1. Locate config file
	path, result := checkConfigLocation(resolver, configPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	// 2. Parse config file
	options := &config.Options{}
	if path != "" {
		var parsed *config.Options
		parsed, result = checkConfigParseable(ctx, path)
		results = append(results, result)
		if result.Status == "error" {
			printDiagnostics(w, results, opts)
			return nil
		}
		options = parsed
	}

	// 3. Color overrides
	results = append(results, checkColors(options))

	// 4. Terminal
	results = append(results, checkTerminal(resolver))

	// 5. Effective settings
	cfg, err := resolver.Resolve(ctx, options)
	if err != nil {
		results = append(results, DiagnosticResult{
			Check:   "Settings",
			Status:  "error",
			Message: err.Error(),
		})
	} else {
		results = append(results, describeSettings(cfg))
	}

	printDiagnostics(w, results, opts)
	return nil
}

func checkConfigLocation(resolver *config.Resolver, path string) (string, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Config File",
	}

	if path == "" {
		found, ok := resolver.Discover()
		if !ok {
			result.Status = "ok"
			result.Message = "No config file found, using defaults"
			result.Details = []string{
				fmt.Sprintf("Searched from %s", resolver.WorkDir),
				fmt.Sprintf("Home directory: %s", resolver.HomeDir),
			}
			result.Suggests = []string{
				fmt.Sprintf("Create %s in the project or home directory to customize output", config.FileName),
			}
			return "", result
		}
		path = found
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Config file not found: %s", path)
		result.Suggests = []string{"Check the file path is correct"}
		return "", result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access config file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return "", result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return "", result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return path, result
}

func checkConfigParseable(ctx context.Context, path string) (*config.Options, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Config Syntax",
	}

	opts, err := config.Load(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to parse config: %v", err)
		result.Suggests = []string{
			"The file must hold a JSON or YAML object (or TOML for " + config.TOMLFileName + ")",
			"Valid keys: colorize, showRule, summary, variant, colors",
		}
		return nil, result
	}

	result.Status = "ok"
	result.Message = "Config file parsed successfully"
	result.Details = []string{
		fmt.Sprintf("Color overrides: %d", len(opts.Colors)),
	}
	return opts, result
}

func checkColors(opts *config.Options) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Color Overrides",
	}

	warnings := checkColorOverrides(opts.Colors)
	if len(warnings) > 0 {
		result.Status = "warning"
		result.Message = fmt.Sprintf("%d override(s) will be ignored", len(warnings))
		result.Details = warnings
		result.Suggests = []string{"Styles are dotted names such as red.bold or bgBlue.whiteBright"}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d override(s) resolved", len(opts.Colors))
	return result
}

func checkTerminal(resolver *config.Resolver) DiagnosticResult {
	result := DiagnosticResult{
		Check:  "Terminal",
		Status: "ok",
	}
	if resolver.ColorSupported {
		result.Message = "Output supports color"
	} else {
		result.Message = "Output does not support color, colorize defaults to off"
		result.Details = []string{
			fmt.Sprintf("%s=%q", style.EnvNoColor, os.Getenv(style.EnvNoColor)),
			fmt.Sprintf("%s=%q", style.EnvForceColor, os.Getenv(style.EnvForceColor)),
			fmt.Sprintf("%s=%q", style.EnvTerm, os.Getenv(style.EnvTerm)),
		}
	}
	return result
}

func describeSettings(cfg *config.RenderConfig) DiagnosticResult {
	paint := cfg.Painter()

	result := DiagnosticResult{
		Check:   "Settings",
		Status:  "ok",
		Message: fmt.Sprintf("variant=%s colorize=%t showRule=%t summary=%s", cfg.Variant, cfg.Colorize, cfg.ShowRule, cfg.Summary),
	}
	for _, role := range style.Roles() {
		result.Details = append(result.Details, fmt.Sprintf("%-9s %s", role, paint.Paint(role, "sample")))
	}
	return result
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	_, _ = fmt.Fprintln(w, "=== clangfmt Configuration Diagnostics ===")
	_, _ = fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		_, _ = fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		_, _ = fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				_, _ = fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			_, _ = fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, "---")
	_, _ = fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		_, _ = fmt.Fprintln(w, "\nFix the errors above before rendering.")
	} else if warnCount > 0 {
		_, _ = fmt.Fprintln(w, "\nConfiguration is usable but has warnings.")
	} else {
		_, _ = fmt.Fprintln(w, "\nConfiguration looks good!")
	}
}
