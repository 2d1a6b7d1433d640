package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ccollicutt/clangfmt/pkg/style"
)

// Resolver turns Options into a RenderConfig. The environment it depends
// on (directories, file existence, terminal capability) is held in fields
// so it can be replaced in tests.
type Resolver struct {
	// WorkDir is where discovery starts.
	WorkDir string

	// HomeDir bounds the discovery walk. Empty disables the home check.
	HomeDir string

	// Exists checks for candidate files during discovery.
	Exists ExistsFunc

	// ColorSupported is used when the options don't set colorize.
	ColorSupported bool

	// Logger receives debug output about discovery and dropped overrides.
	Logger *slog.Logger
}

// NewResolver creates a Resolver for the current process writing to w.
func NewResolver(w io.Writer, logger *slog.Logger) (*Resolver, error) {
	wd, err := workDir()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		WorkDir:        wd,
		HomeDir:        homeDir(),
		Exists:         FileExists,
		ColorSupported: style.Supported(w),
		Logger:         logger,
	}, nil
}

// Discover returns the path of the nearest configuration file, if any.
func (r *Resolver) Discover() (string, bool) {
	exists := r.Exists
	if exists == nil {
		exists = FileExists
	}
	return FindFile(r.WorkDir, r.HomeDir, FileNames(), exists)
}

// Resolve builds the render configuration. Explicit options are used as
// they are; when explicit is nil the nearest configuration file is loaded,
// and a parse failure there is returned as an error.
func (r *Resolver) Resolve(ctx context.Context, explicit *Options) (*RenderConfig, error) {
	opts := explicit
	source := ""

	if opts == nil {
		path, ok := r.Discover()
		if ok {
			r.logger().Debug("using config file", "path", path)
			loaded, err := Load(ctx, path)
			if err != nil {
				return nil, err
			}
			opts = loaded
			source = path
		} else {
			r.logger().Debug("no config file found", "start", r.WorkDir, "home", r.HomeDir)
			opts = &Options{}
		}
	} else if err := Validate(opts); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}

	cfg := r.apply(opts)
	cfg.Source = source
	return cfg, nil
}

func (r *Resolver) apply(opts *Options) *RenderConfig {
	variant := opts.Variant
	if variant == "" {
		variant = DefaultVariant
	}
	d := defaultsByVariant[variant]

	cfg := &RenderConfig{
		Colorize: r.ColorSupported,
		ShowRule: d.showRule,
		Summary:  d.summary,
		Variant:  variant,
		Palette:  d.palette(),
	}

	if opts.Colorize != nil {
		cfg.Colorize = *opts.Colorize
	}
	if opts.ShowRule != nil {
		cfg.ShowRule = *opts.ShowRule
	}
	if opts.Summary != "" {
		cfg.Summary = opts.Summary
	}

	if len(opts.Colors) > 0 {
		palette, rejected := cfg.Palette.WithOverrides(opts.Colors)
		for _, role := range rejected {
			r.logger().Debug("ignoring unknown style", "role", role, "style", opts.Colors[role])
		}
		for name := range opts.Colors {
			if !style.IsRole(name) {
				r.logger().Debug("ignoring color for unknown role", "role", name)
			}
		}
		cfg.Palette = palette
	}

	return cfg
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
