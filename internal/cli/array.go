package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/config"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/image"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/job"
)

// NewArrayCmd creates the 'array' command for job-array submission
// Args: IMAGE COMMAND COMMAND_ARG_PATH
// Flags: --max-tasks (int, default: 16), --image (string), --gpu (bool)
func NewArrayCmd(a *App) *cobra.Command {
	var (
		maxTasks int
		explicit string
		gpu      bool
	)

	cmd := &cobra.Command{
		Use:   "array IMAGE COMMAND COMMAND_ARG_PATH",
		Short: "Submit a job array, one task per line of an argument file",
		Long: `Submit a Slurm job array. Each non-blank line of COMMAND_ARG_PATH becomes
the argument of one array task, trimmed of surrounding whitespace.

IMAGE is a known short-hand such as "freesurfer", a fully qualified image
name, or "other" together with --image.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := job.ReadTaskArgs(args[2])
			if err != nil {
				return err
			}

			sel, err := image.ParseLegacy(args[0], explicit)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("max-tasks") {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				maxTasks = cfg.Slurm.MaxTasks
			}
			if maxTasks < 1 {
				return fmt.Errorf("--max-tasks must be at least 1 (got: %d)", maxTasks)
			}

			return a.submit(cmd.Context(), submission{
				image:    sel,
				command:  args[1],
				tasks:    tasks,
				maxTasks: maxTasks,
				gpu:      gpu,
			})
		},
	}

	cmd.Flags().IntVar(&maxTasks, "max-tasks", config.DefaultMaxTasks, "Maximum number of array tasks running at once")
	cmd.Flags().StringVar(&explicit, "image", "", `Image to use when IMAGE is "other"`)
	cmd.Flags().BoolVar(&gpu, "gpu", false, "Request a GPU and pass it through to each task")

	return cmd
}
