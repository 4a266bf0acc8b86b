// Package container models the podman run line embedded in batch scripts.
package container

import "fmt"

// Runtime is the container CLI invoked on the compute node.
const Runtime = "podman"

// GPU passthrough options for the NVIDIA CDI device.
const (
	GPUSecurityOpt = "--security-opt=label=disable"
	GPUDevice      = "--device=nvidia.com/gpu=all"
)

// Volume is a bind mount passed with -v.
type Volume struct {
	// Host is the path on the compute node; may be a quoted shell expression
	Host string

	// Container is the path inside the container
	Container string

	// ReadOnly appends the :ro option
	ReadOnly bool
}

// String renders the mount as a podman option, e.g. "-v /a:/a:ro".
func (v Volume) String() string {
	s := fmt.Sprintf("-v %s:%s", v.Host, v.Container)
	if v.ReadOnly {
		s += ":ro"
	}
	return s
}

// SameVolume mounts path at the same location inside the container.
func SameVolume(path string) Volume {
	return Volume{Host: path, Container: path}
}

// EnvVar is a variable passed with -e.
type EnvVar struct {
	Name  string
	Value string
}

// String renders the variable as a podman option, e.g. "-e KEY=value".
func (e EnvVar) String() string {
	return fmt.Sprintf("-e %s=%s", e.Name, e.Value)
}

// RunConfig specifies the options of one `podman run --rm` line in a batch
// script. Fields are emitted in declaration order.
type RunConfig struct {
	// GPU enables NVIDIA device passthrough
	GPU bool

	// Site are the mounts and variables every job gets, as Volume or EnvVar
	Site []fmt.Stringer

	// ScriptMount is the "-v" option for a host script, or ""
	ScriptMount string

	// ImageArgs are the image family's volume/env options
	ImageArgs []string

	// AuthFile is the registry authentication file
	AuthFile string

	// Entrypoint overrides the image entrypoint
	Entrypoint string

	// ExtraArgs are operator-supplied options, already split on whitespace
	ExtraArgs []string

	// Image is the image reference
	Image string
}
