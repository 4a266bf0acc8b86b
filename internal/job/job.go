// Package job resolves what runs inside the container: the entrypoint, an
// optional script bind mount, and the per-task arguments of an array job.
package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrFileRead is returned when the task argument file cannot be read.
	ErrFileRead = errors.New("Unable to read command argument file")

	// ErrPathResolution is returned when a local script cannot be mounted.
	ErrPathResolution = errors.New("a canonical path cannot be determined for mounting in each container")

	// ErrNoTasks is returned when the argument file has no usable lines.
	ErrNoTasks = errors.New("No task arguments found")
)

// ScriptExt is the extension that marks COMMAND as a host shell script.
const ScriptExt = ".sh"

// Command is the resolved container entrypoint.
type Command struct {
	// Entrypoint is passed to podman --entrypoint
	Entrypoint string
	// Mount is the host path bind-mounted at the same path, or ""
	Mount string
}

// VolumeArg returns the "-v host:container" option for Mount, or "".
func (c Command) VolumeArg() string {
	if c.Mount == "" {
		return ""
	}
	return fmt.Sprintf("-v %s:%s", c.Mount, c.Mount)
}

// ResolveCommand decides whether cmd is a host script or an in-container
// executable. A host script is an existing file ending in .sh; it is
// canonicalized and mounted at the same path. Anything else is returned
// verbatim with no mount.
func ResolveCommand(cmd string) (Command, error) {
	if filepath.Ext(cmd) != ScriptExt {
		return Command{Entrypoint: cmd}, nil
	}
	if _, err := os.Stat(cmd); err != nil {
		return Command{Entrypoint: cmd}, nil
	}

	abs, err := filepath.Abs(cmd)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		return Command{}, fmt.Errorf("It looks like %q is a shell script, but %w: %w", cmd, ErrPathResolution, err)
	}
	if !utf8.ValidString(abs) {
		return Command{}, fmt.Errorf("%q is not valid UTF-8, so %w", cmd, ErrPathResolution)
	}

	return Command{Entrypoint: abs, Mount: abs}, nil
}

// TaskArgs are the per-task arguments of an array job, already wrapped in
// double quotes for a bash array literal.
type TaskArgs []string

// ParseTaskArgs splits content into lines, trims each, drops blank lines and
// quotes the rest. Quotes inside a line are not escaped.
func ParseTaskArgs(content string) TaskArgs {
	var args TaskArgs
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		args = append(args, `"`+line+`"`)
	}
	return args
}

// ReadTaskArgs reads the argument file at path. One task per non-blank line.
func ReadTaskArgs(path string) (TaskArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w, %q: %w", ErrFileRead, path, err)
	}

	args := ParseTaskArgs(string(data))
	if len(args) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTasks, path)
	}
	return args, nil
}
