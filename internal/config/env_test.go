package config

import (
	"testing"
)

func TestEnvOverrides_SbatchCmd(t *testing.T) {
	cfg := &Config{Slurm: SlurmConfig{Command: "original"}}
	t.Setenv("IHN_HPC_SBATCH_CMD", "/custom/sbatch")

	applyEnvOverrides(cfg)

	if cfg.Slurm.Command != "/custom/sbatch" {
		t.Errorf("expected Slurm.Command to be '/custom/sbatch', got '%s'", cfg.Slurm.Command)
	}
}

func TestEnvOverrides_MaxTasks(t *testing.T) {
	cfg := &Config{Slurm: SlurmConfig{MaxTasks: 16}}
	t.Setenv("IHN_HPC_MAX_TASKS", "32")

	applyEnvOverrides(cfg)

	if cfg.Slurm.MaxTasks != 32 {
		t.Errorf("expected Slurm.MaxTasks to be 32, got %d", cfg.Slurm.MaxTasks)
	}
}

func TestEnvOverrides_MaxTasksInvalid(t *testing.T) {
	cfg := &Config{Slurm: SlurmConfig{MaxTasks: 16}}
	t.Setenv("IHN_HPC_MAX_TASKS", "many")

	applyEnvOverrides(cfg)

	if cfg.Slurm.MaxTasks >= 1 {
		t.Errorf("expected invalid value to fail validation later, got %d", cfg.Slurm.MaxTasks)
	}
}

func TestEnvOverrides_Paths(t *testing.T) {
	cfg := &Config{}
	t.Setenv("IHN_HPC_SCRATCH_DIR", "/tmp/scratch")
	t.Setenv("IHN_HPC_AUTH_FILE", "/tmp/auth.json")

	applyEnvOverrides(cfg)

	if cfg.Paths.ScratchDir != "/tmp/scratch" {
		t.Errorf("expected Paths.ScratchDir to be '/tmp/scratch', got '%s'", cfg.Paths.ScratchDir)
	}
	if cfg.Paths.AuthFile != "/tmp/auth.json" {
		t.Errorf("expected Paths.AuthFile to be '/tmp/auth.json', got '%s'", cfg.Paths.AuthFile)
	}
}

func TestEnvOverrides_EmptyNoChange(t *testing.T) {
	cfg := &Config{
		Slurm:    SlurmConfig{Command: "original-sbatch", GPUGres: "gpu:v100:2"},
		LogLevel: "original-level",
	}
	t.Setenv("IHN_HPC_SBATCH_CMD", "")
	t.Setenv("IHN_HPC_GPU_GRES", "")
	t.Setenv("IHN_HPC_LOG_LEVEL", "")

	applyEnvOverrides(cfg)

	if cfg.Slurm.Command != "original-sbatch" {
		t.Errorf("expected Slurm.Command to remain 'original-sbatch', got '%s'", cfg.Slurm.Command)
	}
	if cfg.Slurm.GPUGres != "gpu:v100:2" {
		t.Errorf("expected Slurm.GPUGres to remain 'gpu:v100:2', got '%s'", cfg.Slurm.GPUGres)
	}
	if cfg.LogLevel != "original-level" {
		t.Errorf("expected LogLevel to remain 'original-level', got '%s'", cfg.LogLevel)
	}
}
