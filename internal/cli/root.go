// Package cli provides the command-line interface for clangfmt.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/clangfmt/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors keeps Cobra from printing this itself
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clangfmt",
		Short: "Render lint results as clang-style text",
		Long: `clangfmt turns the JSON results of a linter into a clang-style report:

  src/app.js:3:5: error: unexpected token [no-foo]
    var x = ;
        ^

  1 error found.

Output can be colorized, and the rule id and summary wording are
configurable through a .clangformatterrc file (JSON or YAML) or a
.clangformatterrc.toml file, found by searching from the working
directory up to the home directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
