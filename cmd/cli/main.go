// clangfmt - clang-style lint report formatter
//
// clangfmt reads the JSON results of a linter and renders them as a compact,
// optionally colorized report with the offending source line and a caret
// under the reported column.
package main

import (
	"os"

	"github.com/ccollicutt/clangfmt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
