// Package slurm builds sbatch command lines and submits batch scripts.
package slurm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/sirupsen/logrus"
)

// Request describes the sbatch options for one submission.
type Request struct {
	// Gres requests generic resources, e.g. "gpu:a100:1"
	Gres string

	// ArraySize is the number of array tasks; 0 submits a single job
	ArraySize int

	// MaxTasks caps concurrently running array tasks
	MaxTasks int

	// Extra are operator-supplied sbatch options, split on whitespace
	Extra string
}

// ArrayFlag returns "--array=0-N%M" for size tasks capped at maxTasks.
func ArrayFlag(size, maxTasks int) string {
	return fmt.Sprintf("--array=0-%d%%%d", size-1, maxTasks)
}

// Args returns the sbatch arguments for r, resource flags first.
func (r Request) Args() []string {
	var args []string
	if r.Gres != "" {
		args = append(args, "--gres="+r.Gres)
	}
	if r.ArraySize > 0 {
		args = append(args, ArrayFlag(r.ArraySize, r.MaxTasks))
	}
	return append(args, strings.Fields(r.Extra)...)
}

// Submitter hands a rendered script to the scheduler.
type Submitter interface {
	Submit(ctx context.Context, req Request, script string) error
}

// Sbatch submits scripts by piping them to the sbatch binary.
type Sbatch struct {
	command string
	stdout  io.Writer
	stderr  io.Writer
	log     logrus.FieldLogger
}

// NewSbatch creates a Submitter running command. sbatch's own output is
// forwarded to stdout and stderr.
func NewSbatch(command string, stdout, stderr io.Writer, log logrus.FieldLogger) *Sbatch {
	return &Sbatch{command: command, stdout: stdout, stderr: stderr, log: log}
}

// Submit starts sbatch, writes script to its stdin, closes it and waits.
// A non-zero exit is reported as *ExitError.
func (s *Sbatch) Submit(ctx context.Context, req Request, script string) error {
	args := req.Args()
	s.log.WithField("command", CommandLine(s.command, args)).Debug("submitting batch script")

	cmd := exec.CommandContext(ctx, s.command, args...)
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStdin, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	_, werr := io.WriteString(stdin, script)
	cerr := stdin.Close()
	if werr == nil {
		werr = cerr
	}

	err = cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("%w: %w", ErrWait, err)
	}
	// sbatch can exit 0 without reading everything; still report the write
	if werr != nil {
		return fmt.Errorf("%w: %w", ErrStdin, werr)
	}
	return nil
}

// CommandLine renders command and args as a shell-quoted string.
func CommandLine(command string, args []string) string {
	return shellescape.QuoteCommand(append([]string{command}, args...))
}

// DryRun writes the script to out and the sbatch command line to log
// instead of submitting.
type DryRun struct {
	command string
	out     io.Writer
	log     logrus.FieldLogger
}

// NewDryRun creates a Submitter that only prints.
func NewDryRun(command string, out io.Writer, log logrus.FieldLogger) *DryRun {
	return &DryRun{command: command, out: out, log: log}
}

// Submit prints script and logs the command that would have received it.
func (d *DryRun) Submit(_ context.Context, req Request, script string) error {
	d.log.Infof("dry run: %s", CommandLine(d.command, req.Args()))
	_, err := io.WriteString(d.out, script)
	return err
}

var (
	_ Submitter = (*Sbatch)(nil)
	_ Submitter = (*DryRun)(nil)
)
