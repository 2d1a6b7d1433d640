package lint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Decode reads the engine's JSON result format: an array of objects with
// filePath and messages. Unknown fields (errorCount, nodeType, ...) are
// ignored.
func Decode(r io.Reader) ([]FileResult, error) {
	var results []FileResult
	dec := json.NewDecoder(r)
	if err := dec.Decode(&results); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after results")
		}
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	return results, nil
}

// ReadFile decodes the results stored in a single file.
func ReadFile(path string) ([]FileResult, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided results path is expected
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close()

	results, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}

// ReadFiles decodes several result files in parallel and concatenates them
// in the order the paths were given.
func ReadFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	loaded := make([][]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results, err := ReadFile(path)
			if err != nil {
				return err
			}
			loaded[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []FileResult
	for _, results := range loaded {
		all = append(all, results...)
	}
	return all, nil
}

// ExpandInputs expands a list of result file paths and glob patterns.
// Patterns that don't match anything are kept as literal paths so the
// caller gets a useful not-found error. Argument order is preserved and
// duplicates are dropped.
func ExpandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	return result, nil
}
