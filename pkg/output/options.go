package output

import (
	"os"
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// BaseDir is the directory file paths are shown relative to.
	// Defaults to the working directory.
	BaseDir string

	// Quiet suppresses the per-message lines and prints only the summary.
	Quiet bool
}

func (o FormatOptions) baseDir() string {
	if o.BaseDir != "" {
		return o.BaseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
