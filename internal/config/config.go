// Package config loads classpick settings from flags, environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/classpick/internal/domain"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. CLASSPICK_SOURCE.
	EnvPrefix = "CLASSPICK"
	// FileName is the config file searched for when --config is not given.
	FileName = ".classpick"
	// FileType is the format of the config file.
	FileType = "yaml"
)

// Extensions configures how source units and artifacts are recognized.
type Extensions struct {
	Source   string `mapstructure:"source"`
	Artifact string `mapstructure:"artifact"`
}

// Config is the merged configuration of one invocation.
type Config struct {
	Source          string     `mapstructure:"source"`
	Classes         string     `mapstructure:"classes"`
	Output          string     `mapstructure:"output"`
	Manifest        string     `mapstructure:"manifest"`
	DryRun          bool       `mapstructure:"dry_run"`
	Verbose         bool       `mapstructure:"verbose"`
	Plain           bool       `mapstructure:"plain"`
	Extensions      Extensions `mapstructure:"extensions"`
	NestedSeparator string     `mapstructure:"nested_separator"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFile is used exclusively when set; it must exist.
	ConfigFile string
	// SearchDirs are searched for FileName.yaml when ConfigFile is empty.
	SearchDirs []string
	// Flags are bound by name; flag "dry-run" maps to key "dry_run".
	Flags *pflag.FlagSet
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	layout := domain.DefaultLayout()

	return Config{
		Extensions: Extensions{
			Source:   layout.SourceExt,
			Artifact: layout.ArtifactExt,
		},
		NestedSeparator: layout.Separator,
	}
}

// Load merges flags > environment > config file > defaults.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("source", defaults.Source)
	v.SetDefault("classes", defaults.Classes)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("dry_run", defaults.DryRun)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("plain", defaults.Plain)
	v.SetDefault("extensions.source", defaults.Extensions.Source)
	v.SetDefault("extensions.artifact", defaults.Extensions.Artifact)
	v.SetDefault("nested_separator", defaults.NestedSeparator)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}

		return nil
	}

	if len(opts.SearchDirs) == 0 {
		return nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType(FileType)

	for _, dir := range opts.SearchDirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config file: %w", err)
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error

	flags.VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil || flag.Name == "config" || flag.Name == "help" {
			return
		}

		key := strings.ReplaceAll(flag.Name, "-", "_")
		if err := v.BindPFlag(key, flag); err != nil {
			bindErr = fmt.Errorf("bind flag --%s: %w", flag.Name, err)
		}
	})

	return bindErr
}

// Validate checks the extension and separator settings.
func (c *Config) Validate() error {
	if err := validateExtension("extensions.source", c.Extensions.Source); err != nil {
		return err
	}

	if err := validateExtension("extensions.artifact", c.Extensions.Artifact); err != nil {
		return err
	}

	if c.Extensions.Source == c.Extensions.Artifact {
		return fmt.Errorf("source and artifact extensions are both %q", c.Extensions.Source)
	}

	if c.NestedSeparator == "" || strings.ContainsAny(c.NestedSeparator, `/\`) {
		return fmt.Errorf("nested_separator %q must be non-empty and contain no path separators", c.NestedSeparator)
	}

	return nil
}

// validateExtension accepts a single dot-prefixed segment such as ".java",
// the only form filepath.Ext can report.
func validateExtension(key, ext string) error {
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return fmt.Errorf("%s %q must start with a dot", key, ext)
	}

	if strings.Count(ext, ".") > 1 || strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("%s %q must be a single extension without further dots or path separators", key, ext)
	}

	return nil
}

// Layout returns the file conventions described by c.
func (c *Config) Layout() domain.Layout {
	return domain.Layout{
		SourceExt:   c.Extensions.Source,
		ArtifactExt: c.Extensions.Artifact,
		Separator:   c.NestedSeparator,
	}
}
