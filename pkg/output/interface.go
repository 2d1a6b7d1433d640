package output

import (
	"context"
	"io"

	"github.com/ccollicutt/clangfmt/pkg/lint"
)

// Formatter renders lint results in a specific format.
type Formatter interface {
	// Format renders the results to the given writer.
	Format(ctx context.Context, results []lint.FileResult, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}
