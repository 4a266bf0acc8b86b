package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/image"
)

// errMissingCommand is returned when only flags follow IMAGE.
var errMissingCommand = errors.New("requires COMMAND after IMAGE")

// NewGPUCmd creates the 'gpu' command for single-job GPU submission
// Args: IMAGE COMMAND [ARGS...]
func NewGPUCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gpu IMAGE COMMAND [ARGS...]",
		Short: "Submit a single GPU job",
		Long: `Submit a single job with one GPU passed through to the container.

IMAGE specifies the podman image for the container. A short-hand identifier,
e.g. "freesurfer", may be used for known images. Otherwise IMAGE is passed
directly to podman-run.

COMMAND specifies the command executed inside the container. If COMMAND has a
shell script extension (.sh) and exists on the host it is treated as a
user-defined shell script and mounted inside the container.

Flags may appear anywhere before COMMAND. Everything after COMMAND is passed
to it unchanged, including flags. Use "--" to run a COMMAND starting with "-".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rest, err := parseUntilCommand(cmd, args[1:])
			if err != nil {
				return err
			}
			if len(rest) == 0 {
				return errMissingCommand
			}

			return a.submit(cmd.Context(), submission{
				image:   image.Parse(args[0]),
				command: rest[0],
				args:    rest[1:],
				gpu:     true,
			})
		},
	}

	// Parsing stops at IMAGE here; parseUntilCommand continues up to COMMAND
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// parseUntilCommand parses the flags between IMAGE and COMMAND and returns
// COMMAND with its arguments. Flags after COMMAND are left untouched.
// A help flag in that position yields pflag.ErrHelp, which cobra answers
// with the usage text.
func parseUntilCommand(cmd *cobra.Command, args []string) ([]string, error) {
	flags := cmd.Flags()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if help, err := flags.GetBool("help"); err == nil && help {
		return nil, pflag.ErrHelp
	}
	return flags.Args(), nil
}
