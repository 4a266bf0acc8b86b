package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds site settings for generating and submitting batch scripts.
// It is immutable after creation via LoadConfig().
type Config struct {
	// Slurm controls how sbatch is invoked
	Slurm SlurmConfig `yaml:"slurm"`

	// Paths are cluster locations embedded in every generated script
	Paths PathsConfig `yaml:"paths"`

	// Freesurfer holds the image and host mounts for the "freesurfer" shorthand
	Freesurfer FreesurferConfig `yaml:"freesurfer"`

	// LogLevel controls log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// SlurmConfig controls sbatch invocation.
type SlurmConfig struct {
	// Command is the path or name of the sbatch binary
	Command string `yaml:"command"`

	// GPUGres is the generic resource requested for GPU jobs
	GPUGres string `yaml:"gpu_gres"`

	// MaxTasks is the default cap on concurrently running array tasks
	MaxTasks int `yaml:"max_tasks"`
}

// PathsConfig lists host paths referenced by generated scripts.
// Values may contain shell variables; they are expanded on the compute node.
type PathsConfig struct {
	// ScratchDir is exported as TMPDIR
	ScratchDir string `yaml:"scratch_dir"`

	// SharedDir is bind-mounted at the same path inside every container
	SharedDir string `yaml:"shared_dir"`

	// AuthFile is the container registry authentication file
	AuthFile string `yaml:"auth_file"`
}

// FreesurferConfig describes the FreeSurfer image family.
type FreesurferConfig struct {
	// Repository is the image name without a tag
	Repository string `yaml:"repository"`

	// Tag is used when --tag is not given
	Tag string `yaml:"tag"`

	// LicenseFile is the host license mounted read-only into the container
	LicenseFile string `yaml:"license_file"`

	// MatlabRuntime is the host MATLAB runtime directory
	MatlabRuntime string `yaml:"matlab_runtime"`
}

// LoadConfig loads configuration from path.
// It applies defaults, then file values, then environment overrides,
// then validates. An empty path selects DefaultConfigPath(); a missing
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
