package cli

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/container"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/image"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/job"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/script"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/slurm"
)

// submission is one parsed gpu or array invocation.
type submission struct {
	image   image.Selector
	command string

	// args follow the image in single-job mode
	args []string

	// tasks, when set, submit a job array
	tasks    job.TaskArgs
	maxTasks int

	gpu bool
}

// submit resolves s into a batch script and hands it to sbatch.
func (a *App) submit(ctx context.Context, s submission) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	cmd, err := job.ResolveCommand(s.command)
	if err != nil {
		return err
	}
	resolved := image.NewResolver(cfg.Freesurfer, a.log).Resolve(s.image, a.opts.Tag)

	run := container.SiteConfig(cfg.Paths.SharedDir, cfg.Paths.AuthFile)
	run.GPU = s.gpu
	run.ScriptMount = cmd.VolumeArg()
	run.ImageArgs = resolved.Args
	run.Entrypoint = cmd.Entrypoint
	run.ExtraArgs = strings.Fields(a.opts.PodmanArgs)
	run.Image = resolved.Reference

	a.log.WithFields(logrus.Fields{
		"selector":   s.image.String(),
		"image":      resolved.Reference,
		"entrypoint": cmd.Entrypoint,
		"tasks":      len(s.tasks),
	}).Debug("resolved job")
	a.log.Debugf("podman %s", strings.Join(run.Args(), " "))

	text, err := script.RenderDefault(script.Job{
		ScratchDir: cfg.Paths.ScratchDir,
		Run:        run,
		Args:       s.args,
		Tasks:      s.tasks,
	})
	if err != nil {
		return err
	}

	req := slurm.Request{Extra: a.opts.SbatchArgs}
	if s.gpu {
		req.Gres = cfg.Slurm.GPUGres
	}
	if len(s.tasks) > 0 {
		req.ArraySize = len(s.tasks)
		req.MaxTasks = s.maxTasks
	}

	return a.newSubmitter(cfg).Submit(ctx, req, text)
}
