package config

import (
	"os"
	"strconv"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "IHN_HPC_SBATCH_CMD",
		apply: func(c *Config, v string) {
			c.Slurm.Command = v
		},
	},
	{
		envVar: "IHN_HPC_GPU_GRES",
		apply: func(c *Config, v string) {
			c.Slurm.GPUGres = v
		},
	},
	{
		envVar: "IHN_HPC_MAX_TASKS",
		apply: func(c *Config, v string) {
			// Unparseable values are left for validation to report.
			n, err := strconv.Atoi(v)
			if err != nil {
				n = -1
			}
			c.Slurm.MaxTasks = n
		},
	},
	{
		envVar: "IHN_HPC_SCRATCH_DIR",
		apply: func(c *Config, v string) {
			c.Paths.ScratchDir = v
		},
	},
	{
		envVar: "IHN_HPC_AUTH_FILE",
		apply: func(c *Config, v string) {
			c.Paths.AuthFile = v
		},
	},
	{
		envVar: "IHN_HPC_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
