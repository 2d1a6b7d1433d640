package style

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Environment variables consulted by Supported.
const (
	EnvNoColor    = "NO_COLOR"
	EnvForceColor = "FORCE_COLOR"
	EnvTerm       = "TERM"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// Supported reports whether w is a terminal that should receive color.
// FORCE_COLOR (any value other than "0") wins over everything, NO_COLOR
// and TERM=dumb disable color, and anything that is not a terminal file
// descriptor is treated as plain.
func Supported(w io.Writer) bool {
	return supported(w, os.Getenv)
}

func supported(w io.Writer, getenv func(string) string) bool {
	if v := getenv(EnvForceColor); v != "" && v != "0" {
		return true
	}
	if getenv(EnvNoColor) != "" {
		return false
	}
	if getenv(EnvTerm) == "dumb" {
		return false
	}

	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
