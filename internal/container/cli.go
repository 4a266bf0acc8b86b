package container

import (
	"fmt"
	"strings"
)

// HomeVolume mounts the submitting user's home at the same path.
var HomeVolume = Volume{Host: `"$HOME"`, Container: `"$HOME"`}

// HomeEnv exposes the host home to the workload.
var HomeEnv = EnvVar{Name: "HPC_HOME", Value: `"$HOME"`}

// SiteConfig returns a RunConfig with the mounts every job gets: the home
// directory and sharedDir, plus the registry auth file.
func SiteConfig(sharedDir, authFile string) RunConfig {
	return RunConfig{
		Site:     []fmt.Stringer{HomeVolume, HomeEnv, SameVolume(sharedDir)},
		AuthFile: authFile,
	}
}

// OptionLines returns the podman run options grouped one per script line.
// Empty groups are omitted. The image reference is not included.
func (c RunConfig) OptionLines() []string {
	var lines []string

	if c.GPU {
		lines = append(lines, GPUSecurityOpt, GPUDevice)
	}
	for _, opt := range c.Site {
		lines = append(lines, opt.String())
	}

	if c.ScriptMount != "" {
		lines = append(lines, c.ScriptMount)
	}
	lines = append(lines, c.ImageArgs...)

	if c.AuthFile != "" {
		lines = append(lines, "--authfile "+c.AuthFile)
	}
	if c.Entrypoint != "" {
		lines = append(lines, "--entrypoint "+c.Entrypoint)
	}
	if len(c.ExtraArgs) > 0 {
		lines = append(lines, strings.Join(c.ExtraArgs, " "))
	}

	return lines
}

// Args flattens OptionLines and the image into a podman run argument list.
func (c RunConfig) Args() []string {
	args := []string{"run", "--rm"}
	for _, line := range c.OptionLines() {
		args = append(args, strings.Fields(line)...)
	}
	return append(args, c.Image)
}
