package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/classpick/internal/domain"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("source", "s", "", "")
	flags.StringP("classes", "c", "", "")
	flags.StringP("output", "o", "", "")
	flags.Bool("dry-run", false, "")
	flags.String("config", "", "")

	return flags
}

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()

	path := filepath.Join(dir, FileName+"."+FileType)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, ".java", cfg.Extensions.Source)
	assert.Equal(t, ".class", cfg.Extensions.Artifact)
	assert.Equal(t, "$", cfg.NestedSeparator)
	assert.Equal(t, domain.DefaultLayout(), cfg.Layout())
	assert.Empty(t, cfg.File)
	assert.False(t, cfg.DryRun)
}

func TestLoad_SearchDirFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
source: ./src
classes: ./target/classes
output: ./dist
dry_run: true
extensions:
  artifact: .clazz
`)

	cfg, err := Load(LoadOptions{SearchDirs: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "./src", cfg.Source)
	assert.Equal(t, "./target/classes", cfg.Classes)
	assert.Equal(t, "./dist", cfg.Output)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, ".clazz", cfg.Extensions.Artifact)
	assert.Equal(t, ".java", cfg.Extensions.Source)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingSearchFileIsIgnored(t *testing.T) {
	cfg, err := Load(LoadOptions{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "source: from-file\nclasses: from-file\noutput: from-file\n")

	t.Setenv("CLASSPICK_CLASSES", "from-env")
	t.Setenv("CLASSPICK_OUTPUT", "from-env")
	t.Setenv("CLASSPICK_EXTENSIONS_SOURCE", ".kt")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output", "from-flag"}))

	cfg, err := Load(LoadOptions{ConfigFile: path, Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Source)
	assert.Equal(t, "from-env", cfg.Classes)
	assert.Equal(t, "from-flag", cfg.Output)
	assert.Equal(t, ".kt", cfg.Extensions.Source)
}

func TestLoad_DryRunFlag(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--dry-run"}))

	cfg, err := Load(LoadOptions{Flags: flags})
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"source extension without dot", func(c *Config) { c.Extensions.Source = "java" }},
		{"artifact extension is only a dot", func(c *Config) { c.Extensions.Artifact = "." }},
		{"same extensions", func(c *Config) { c.Extensions.Artifact = ".java" }},
		{"multi-dot source extension", func(c *Config) { c.Extensions.Source = ".tar.gz" }},
		{"multi-dot artifact extension", func(c *Config) { c.Extensions.Artifact = ".class.bak" }},
		{"extension with path separator", func(c *Config) { c.Extensions.Source = "./java" }},
		{"empty separator", func(c *Config) { c.NestedSeparator = "" }},
		{"separator with slash", func(c *Config) { c.NestedSeparator = "/" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Extensions.Source = ".kt"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidSettingsRejected(t *testing.T) {
	t.Setenv("CLASSPICK_NESTED_SEPARATOR", "/")

	_, err := Load(LoadOptions{})
	assert.Error(t, err)
}
