package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSummary is returned for a summary value other than sentence or count.
	ErrInvalidSummary = errors.New("summary must be sentence or count")

	// ErrInvalidVariant is returned for a variant other than standalone or plugin.
	ErrInvalidVariant = errors.New("variant must be standalone or plugin")

	// ErrNotBool is returned when colorize or showRule is not true or false.
	ErrNotBool = errors.New("value must be true or false")
)

// Load reads, parses and validates an options file. The format is chosen
// from the file name: *.toml is TOML, anything else is JSON or YAML.
func Load(_ context.Context, path string) (*Options, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path comes from discovery or the user
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	opts, err := Decode(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := Validate(opts); err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}

	return opts, nil
}

// Decode parses options from data. name is only used to pick the format.
func Decode(name string, data []byte) (*Options, error) {
	switch formatOf(name, data) {
	case formatTOML:
		opts := &Options{}
		if _, err := toml.Decode(string(data), opts); err != nil {
			return nil, err
		}
		return opts, nil
	case formatJSON:
		opts := &Options{}
		err := json.Unmarshal(data, opts)
		if err == nil {
			return opts, nil
		}
		// Flow-style YAML such as {colorize: true} also starts with a brace.
		if isSyntaxError(err) {
			if yopts, yerr := decodeYAML(data); yerr == nil {
				return yopts, nil
			}
		}
		return nil, err
	default:
		return decodeYAML(data)
	}
}

func decodeYAML(data []byte) (*Options, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	opts := &Options{}
	if doc.Kind == 0 {
		return opts, nil
	}
	if err := decodeYAMLNode(&doc, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func decodeYAMLNode(node *yaml.Node, opts *Options) error {
	if err := checkYAMLBools(node); err != nil {
		return err
	}
	return node.Decode(opts)
}

// checkYAMLBools rejects boolean settings written as strings. yaml.v3
// accepts "yes", "on" and friends for bool fields, which JSON does not.
func checkYAMLBools(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key != "colorize" && key != "showRule" {
			continue
		}
		value := node.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode {
			continue
		}
		switch value.ShortTag() {
		case "!!bool", "!!null":
		default:
			return fmt.Errorf("line %d: %w: %s is %q", value.Line, ErrNotBool, key, value.Value)
		}
	}
	return nil
}

func isSyntaxError(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr)
}

// FromNamespace extracts the options embedded under key in a linter
// configuration document (for example the "clangFormatter" entry of an
// .eslintrc). A document without the key yields empty options.
func FromNamespace(name string, data []byte, key string) (*Options, error) {
	var (
		opts *Options
		err  error
	)

	switch formatOf(name, data) {
	case formatTOML:
		opts, err = tomlNamespace(data, key)
	case formatJSON:
		opts, err = jsonNamespace(data, key)
		if err != nil && isSyntaxError(err) {
			if yopts, yerr := yamlNamespace(data, key); yerr == nil {
				opts, err = yopts, nil
			}
		}
	default:
		opts, err = yamlNamespace(data, key)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(opts); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return opts, nil
}

func tomlNamespace(data []byte, key string) (*Options, error) {
	opts := &Options{}
	var doc map[string]toml.Primitive
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}
	prim, ok := doc[key]
	if !ok {
		return opts, nil
	}
	if err := md.PrimitiveDecode(prim, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return opts, nil
}

func jsonNamespace(data []byte, key string) (*Options, error) {
	opts := &Options{}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	raw, ok := doc[key]
	if !ok {
		return opts, nil
	}
	if err := json.Unmarshal(raw, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return opts, nil
}

func yamlNamespace(data []byte, key string) (*Options, error) {
	opts := &Options{}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	node, ok := doc[key]
	if !ok {
		return opts, nil
	}
	if err := decodeYAMLNode(&node, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return opts, nil
}

// Validate checks the enumerated fields. Color overrides are not checked
// here; unknown style paths are dropped during resolution.
func Validate(opts *Options) error {
	switch opts.Summary {
	case "", SummarySentence, SummaryCount:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidSummary, opts.Summary)
	}

	switch opts.Variant {
	case "", VariantStandalone, VariantPlugin:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidVariant, opts.Variant)
	}

	return nil
}

type format int

const (
	formatYAML format = iota
	formatJSON
	formatTOML
)

// formatOf picks the decoder. JSON is detected by content because the
// original rc file has no extension and YAML parsers reject some valid JSON
// (tab indentation, for one). Content that fails as JSON syntax is retried
// as YAML by the callers.
func formatOf(name string, data []byte) format {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return formatTOML
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return formatJSON
	}
	return formatYAML
}
