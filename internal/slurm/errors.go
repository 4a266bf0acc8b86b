package slurm

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn is returned when sbatch cannot be started.
	ErrSpawn = errors.New("Unable to invoke sbatch")

	// ErrStdin is returned when the script cannot be written to sbatch.
	ErrStdin = errors.New("Unable to take stdin of sbatch")

	// ErrWait is returned when waiting on sbatch fails.
	ErrWait = errors.New("Unable to wait for sbatch")
)

// ExitError reports that sbatch ran and exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("sbatch exited with status %d", e.Code)
}

// IsExitError reports whether err is, or wraps, an *ExitError.
func IsExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
