package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clangfmt/pkg/config"
	"github.com/ccollicutt/clangfmt/pkg/lint"
	"github.com/ccollicutt/clangfmt/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// RenderOptions holds command-line options for the render command.
type RenderOptions struct {
	Output     string
	ConfigFile string
	ESLintRC   string
	Color      string
	Quiet      bool
	Verbose    bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render [results-file...]",
		Short: "Render lint results as a clang-style report",
		Long: `Render lint results produced by a linter's JSON formatter.

Results are read from the given files (glob patterns allowed) or from
standard input when no file is given.

Configuration is taken from --config or --eslintrc when set. Otherwise the
nearest .clangformatterrc (or .clangformatterrc.toml) is used, searching
from the working directory up to the home directory.

Exit codes:
  0 - No errors reported
  1 - At least one error reported
  2 - Configuration or runtime error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Options file to use instead of discovery")
	cmd.Flags().StringVar(&opts.ESLintRC, "eslintrc", "", "Linter config file holding options under the \""+config.NamespaceKey+"\" key")
	cmd.Flags().StringVar(&opts.Color, "color", "auto", "Colorize output (auto|always|never)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log configuration decisions to stderr")
	cmd.MarkFlagsMutuallyExclusive("config", "eslintrc")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *RenderOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	results, err := readResults(ctx, cmd, args)
	if err != nil {
		return fmt.Errorf("reading results: %w", err)
	}
	logger.Debug("results loaded", "files", len(results))

	explicit, err := loadExplicitOptions(ctx, opts.ConfigFile, opts.ESLintRC)
	if err != nil {
		return err
	}

	resolver, err := config.NewResolver(cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	cfg, err := resolver.Resolve(ctx, explicit)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := applyColorFlag(cfg, opts.Color); err != nil {
		return err
	}

	formatter, err := createFormatter(cfg, opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, results, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output.Summarize(results).HasErrors() {
		ExitCode = 1
	}

	return nil
}

func readResults(ctx context.Context, cmd *cobra.Command, args []string) ([]lint.FileResult, error) {
	if len(args) == 0 {
		return lint.Decode(cmd.InOrStdin())
	}

	paths, err := lint.ExpandInputs(args)
	if err != nil {
		return nil, err
	}
	return lint.ReadFiles(ctx, paths)
}

// loadExplicitOptions returns the options named on the command line, or nil
// when discovery should be used.
func loadExplicitOptions(ctx context.Context, configFile, eslintrc string) (*config.Options, error) {
	switch {
	case configFile != "":
		opts, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return opts, nil

	case eslintrc != "":
		data, err := os.ReadFile(eslintrc) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading linter config: %w", err)
		}
		opts, err := config.FromNamespace(eslintrc, data, config.NamespaceKey)
		if err != nil {
			return nil, fmt.Errorf("parsing linter config %s: %w", eslintrc, err)
		}
		return opts, nil
	}

	return nil, nil
}

func applyColorFlag(cfg *config.RenderConfig, mode string) error {
	switch mode {
	case "", "auto":
	case "always":
		cfg.Colorize = true
	case "never":
		cfg.Colorize = false
	default:
		return fmt.Errorf("unknown color mode %q (use auto, always or never)", mode)
	}
	return nil
}

func createFormatter(cfg *config.RenderConfig, opts *RenderOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Quiet: opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(cfg, formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
