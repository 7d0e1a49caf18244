package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/classpick/internal/domain"
	m "github.com/mouse-blink/classpick/internal/model"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Show the JDK version of class files",
		Long: `Inspect reads the header of each given class file, or of every class
file below each given directory, and prints its version and JDK release.
It fails only when no class file could be decoded.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			paths := make([]m.Path, 0, len(args))
			for _, arg := range args {
				paths = append(paths, m.Path(arg))
			}

			_, _, err = workflowFactory(cmd, cfg, logger).Inspect(cmd.Context(), domain.InspectArgs{Paths: paths})

			return err
		},
	}
}
