// Package cmd provides the root command and CLI setup for classpick.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/classpick/internal/adapter"
	"github.com/mouse-blink/classpick/internal/config"
	"github.com/mouse-blink/classpick/internal/controller"
	"github.com/mouse-blink/classpick/internal/domain"
	m "github.com/mouse-blink/classpick/internal/model"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// workflowFactory builds the workflow for one invocation. Tests replace it.
var workflowFactory = newWorkflow

var configFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Classpick collects the compiled class files of a Java source tree.

For every .java file under --source it looks up the class files with the same
name (including nested classes such as Outer$Inner.class and Outer$1.class) in
the mirrored package directory under --classes. If any source file has no
class file nothing is copied. Otherwise the class files and every non-source
file are copied into --output, and the JDK version of each class file is read
from its header. A warning is shown when class files were built by different
JDKs.

Settings may also come from CLASSPICK_* environment variables or a
.classpick.yaml file in the working directory.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "classpick",
		Short:        "Copy the class files compiled from a Java source tree",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runCopy,
	}

	cmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "config file (default is ./.classpick.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().Bool("plain", false, "plain text output even on a terminal")

	cmd.Flags().StringP("source", "s", "", "source directory containing .java files")
	cmd.Flags().StringP("classes", "c", "", "directory containing the compiled class files")
	cmd.Flags().StringP("output", "o", "", "output directory, created if missing")
	cmd.Flags().StringP("manifest", "m", "", "write a YAML manifest of the copied files")
	cmd.Flags().BoolP("dry-run", "n", false, "resolve and report without copying")

	cmd.AddCommand(newInspectCmd(), newVersionCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func runCopy(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	if cfg.Source == "" || cfg.Classes == "" || cfg.Output == "" {
		return fmt.Errorf("--source, --classes and --output are required (flags, %s_* environment or config file)", config.EnvPrefix)
	}

	_, err = workflowFactory(cmd, cfg, logger).Copy(cmd.Context(), domain.CopyArgs{
		SourceRoot: m.Path(cfg.Source),
		ClassRoot:  m.Path(cfg.Classes),
		OutputRoot: m.Path(cfg.Output),
		Manifest:   m.Path(cfg.Manifest),
		DryRun:     cfg.DryRun,
		Version:    Version,
	})

	return err
}

func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFileFlag,
		SearchDirs: configSearchDirs(),
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.File != "" {
		logger.Debug("loaded config file", "path", cfg.File)
	}

	return cfg, logger, nil
}

func configSearchDirs() []string {
	dirs := []string{"."}

	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "classpick"))
	}

	return dirs
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "classpick",
		Level:  level,
	})
}

func newWorkflow(cmd *cobra.Command, cfg *config.Config, logger *log.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	useTTY := !cfg.Plain && controller.IsTTY(cmd.OutOrStdout())

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewManifestStore(fsAdapter),
		controller.NewUI(cmd, useTTY),
		cfg.Layout(),
		logger,
	)
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}

	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
