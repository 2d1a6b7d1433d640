package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ExistsFunc reports whether a regular file exists at path.
type ExistsFunc func(path string) bool

// FileExists is the ExistsFunc backed by the real filesystem.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// FindFile searches for a configuration file starting at start and walking
// up through parent directories. The walk stops after home has been checked
// or when the filesystem root is reached, whichever comes first. Within a
// directory the names are tried in order and the first existing file wins.
// If nothing was found and home was never visited, home is checked last.
//
// FindFile does no I/O of its own; all existence checks go through exists.
// An empty home disables the home directory handling.
func FindFile(start, home string, names []string, exists ExistsFunc) (string, bool) {
	dir := filepath.Clean(start)
	if home != "" {
		home = filepath.Clean(home)
	}
	visitedHome := false

	for {
		if path, ok := findIn(dir, names, exists); ok {
			return path, true
		}

		if home != "" && dir == home {
			visitedHome = true
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if home != "" && !visitedHome {
		return findIn(home, names, exists)
	}

	return "", false
}

func findIn(dir string, names []string, exists ExistsFunc) (string, bool) {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// homeDir returns the user's home directory, or "" if it cannot be
// determined.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// workDir returns the absolute working directory.
func workDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if wd == "" {
		return "", errors.New("empty working directory")
	}
	return wd, nil
}
