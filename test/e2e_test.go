package test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/ccollicutt/clangfmt/internal/cli"
	"github.com/ccollicutt/clangfmt/internal/cli/commands"
	"github.com/ccollicutt/clangfmt/pkg/config"
	"github.com/ccollicutt/clangfmt/pkg/lint"
	"github.com/ccollicutt/clangfmt/pkg/output"
)

var (
	projectRoot string
	rootOnce    sync.Once
)

// chdir changes to the project root directory for tests.
// Fixture paths are relative to the project root.
func chdir(t *testing.T) {
	t.Helper()
	rootOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		projectRoot = filepath.Dir(filepath.Dir(filename))
	})
	t.Chdir(projectRoot)
}

// requireFile fails the test if the required fixture doesn't exist.
func requireFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Required test file not found: %s", path)
	}
}

// isolatedResolver returns a resolver whose discovery cannot leave dir.
func isolatedResolver(dir string) *config.Resolver {
	return &config.Resolver{
		WorkDir: dir,
		HomeDir: dir,
		Exists:  config.FileExists,
	}
}

func loadResults(t *testing.T, name string) []lint.FileResult {
	t.Helper()
	path := filepath.Join("testdata", "results", name)
	requireFile(t, path)

	results, err := lint.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return results
}

func render(t *testing.T, cfg *config.RenderConfig, results []lint.FileResult) string {
	t.Helper()
	return output.NewTextFormatter(cfg, output.FormatOptions{BaseDir: projectRoot}).Render(results)
}

// TestE2E_SingleError renders one error with a source line and checks the
// whole report.
func TestE2E_SingleError(t *testing.T) {
	chdir(t)
	results := loadResults(t, "single_error.json")

	cfg, err := isolatedResolver(t.TempDir()).Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	got := render(t, cfg, results)
	want := "\n" +
		"src/app.js:3:5: error: unexpected token [no-foo]\n" +
		"  var x = ;\n" +
		"    ^\n" +
		"\n" +
		"1 error found."
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

// TestE2E_Mixed covers warnings, a fatal parse error without rule or source,
// and a clean file in one report.
func TestE2E_Mixed(t *testing.T) {
	chdir(t)
	results := loadResults(t, "mixed.json")

	cfg, err := isolatedResolver(t.TempDir()).Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	got := render(t, cfg, results)
	want := "\n" +
		"src/index.js:10:14: warning: Missing semicolon. [semi]\n" +
		"const a = b()\n" +
		"             ^\n" +
		"src/index.js:12:3: error: 'foo' is not defined. [no-undef]\n" +
		"  foo();\n" +
		"  ^\n" +
		"src/parse.js:7:1: error: Parsing error: Unexpected token }\n" +
		"src/util.js:4:9: warning: Expected '===' and instead saw '=='. [eqeqeq]\n" +
		"\n" +
		"2 warnings and 2 errors found."
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}

	if strings.Contains(got, "clean.js") {
		t.Error("Files without messages should not appear in the report")
	}

	summary := output.Summarize(results)
	if summary.Total != 4 || summary.Errors != 2 || summary.Warnings != 2 {
		t.Errorf("Summarize() = %+v", summary)
	}
}

// TestE2E_CleanResults checks that a run without problems prints nothing.
func TestE2E_CleanResults(t *testing.T) {
	chdir(t)
	results := loadResults(t, "clean.json")

	cfg, err := isolatedResolver(t.TempDir()).Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got := render(t, cfg, results); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}

	var buf bytes.Buffer
	f := output.NewTextFormatter(cfg, output.FormatOptions{BaseDir: projectRoot})
	if err := f.Format(context.Background(), results, &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() wrote %q, want nothing", buf.String())
	}
}

// TestE2E_FileMatchesExplicitOptions loads each fixture config once as
// explicit options and once through discovery, and requires identical
// reports.
func TestE2E_FileMatchesExplicitOptions(t *testing.T) {
	chdir(t)
	results := loadResults(t, "mixed.json")

	fixtures := []struct {
		config   string
		filename string
	}{
		{"standalone.json", config.FileName},
		{"plugin.yaml", config.FileName},
		{"count.toml", config.TOMLFileName},
	}

	for _, fx := range fixtures {
		t.Run(fx.config, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join("testdata", "configs", fx.config)
			requireFile(t, path)

			explicit, err := config.Load(ctx, path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			fromOptions, err := isolatedResolver(t.TempDir()).Resolve(ctx, explicit)
			if err != nil {
				t.Fatalf("Resolve(explicit) failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read %s: %v", path, err)
			}
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, fx.filename), data, 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			fromFile, err := isolatedResolver(dir).Resolve(ctx, nil)
			if err != nil {
				t.Fatalf("Resolve(discovered) failed: %v", err)
			}
			if fromFile.Source == "" {
				t.Fatal("Discovered config has no source")
			}

			a := render(t, fromOptions, results)
			b := render(t, fromFile, results)
			if a != b {
				t.Errorf("explicit and discovered reports differ:\n%q\n%q", a, b)
			}
		})
	}
}

// TestE2E_Variants checks the two summary forms and rule visibility that
// each fixture config selects.
func TestE2E_Variants(t *testing.T) {
	chdir(t)
	results := loadResults(t, "single_error.json")

	tests := []struct {
		config      string
		wantRule    bool
		wantSummary string
	}{
		{"plugin.yaml", false, "✖ 1 problem (1 error, 0 warnings)"},
		{"count.toml", false, "✖ 1 problem (1 error, 0 warnings)"},
	}

	for _, tt := range tests {
		t.Run(tt.config, func(t *testing.T) {
			ctx := context.Background()
			opts, err := config.Load(ctx, filepath.Join("testdata", "configs", tt.config))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			cfg, err := isolatedResolver(t.TempDir()).Resolve(ctx, opts)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			cfg.Colorize = false

			got := render(t, cfg, results)
			if strings.Contains(got, "[no-foo]") != tt.wantRule {
				t.Errorf("rule shown = %v, want %v: %q", !tt.wantRule, tt.wantRule, got)
			}
			if !strings.HasSuffix(got, "\n"+tt.wantSummary) {
				t.Errorf("Render() = %q, want summary %q", got, tt.wantSummary)
			}
		})
	}
}

// TestE2E_ESLintNamespace reads options embedded in an eslintrc.
func TestE2E_ESLintNamespace(t *testing.T) {
	chdir(t)
	path := filepath.Join("testdata", "configs", "eslintrc.json")
	requireFile(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	opts, err := config.FromNamespace(path, data, config.NamespaceKey)
	if err != nil {
		t.Fatalf("FromNamespace failed: %v", err)
	}

	cfg, err := isolatedResolver(t.TempDir()).Resolve(context.Background(), opts)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Variant != config.VariantPlugin {
		t.Errorf("Variant = %q, want plugin", cfg.Variant)
	}
	if !cfg.ShowRule {
		t.Error("showRule from the namespace should override the plugin default")
	}
	if cfg.Summary != config.SummaryCount {
		t.Errorf("Summary = %q, want count", cfg.Summary)
	}
}

// TestE2E_BadConfigs checks that every broken fixture is rejected.
func TestE2E_BadConfigs(t *testing.T) {
	chdir(t)

	tests := []struct {
		file    string
		wantErr error
	}{
		{"truncated.json", nil},
		{"invalid_summary.yaml", config.ErrInvalidSummary},
		{"wrong_type.yaml", config.ErrNotBool},
		{"trailing_garbage.json", nil},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("testdata", "configs", "bad", tt.file)
			requireFile(t, path)

			_, err := config.Load(context.Background(), path)
			if err == nil {
				t.Fatalf("Load(%s) succeeded, want error", tt.file)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load(%s) error = %v, want %v", tt.file, err, tt.wantErr)
			}
		})
	}
}

// TestE2E_CLI drives the root command the way the binary does.
func TestE2E_CLI(t *testing.T) {
	chdir(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FORCE_COLOR", "")

	resultsPath := filepath.Join(projectRoot, "testdata", "results", "mixed.json")
	configPath := filepath.Join(projectRoot, "testdata", "configs", "plugin.yaml")

	// Run from the temporary home so no rc file is discovered.
	t.Chdir(home)
	commands.ExitCode = 0
	t.Cleanup(func() { commands.ExitCode = 0 })

	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"render", "--config", configPath, "--color", "never", resultsPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("render failed: %v\nOutput: %s", err, out.String())
	}

	got := out.String()
	if !strings.HasSuffix(got, "✖ 4 problems (2 errors, 2 warnings)\n") {
		t.Errorf("Output = %q", got)
	}
	if strings.Contains(got, "[semi]") {
		t.Error("plugin variant should hide rule ids")
	}
	if commands.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", commands.ExitCode)
	}
}

// TestE2E_Diagnose runs diagnose on a fixture config.
func TestE2E_Diagnose(t *testing.T) {
	chdir(t)
	t.Setenv("HOME", t.TempDir())

	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"diagnose", filepath.Join("testdata", "configs", "standalone.json")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("diagnose failed: %v\nOutput: %s", err, out.String())
	}

	got := out.String()
	for _, check := range []string{"Configuration Diagnostics", "Config File", "Config Syntax", "Summary:"} {
		if !strings.Contains(got, check) {
			t.Errorf("Output missing %q", check)
		}
	}
}
