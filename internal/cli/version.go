package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// withDefaults fills fields left empty by a non-release build.
func (v VersionInfo) withDefaults() VersionInfo {
	if v.Version == "" {
		v.Version = "dev"
	}
	if v.Commit == "" {
		v.Commit = "unknown"
	}
	if v.Date == "" {
		v.Date = "unknown"
	}
	return v
}

// NewVersionCmd creates the version command
func NewVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := app.versionInfo.withDefaults()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ihn-hpc-sbatch version %s\n", v.Version)
			fmt.Fprintf(out, "commit: %s\n", v.Commit)
			fmt.Fprintf(out, "built: %s\n", v.Date)
			return nil
		},
	}
}
