package config

import "testing"

func TestDefaultConfig_Slurm(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Slurm.Command != "sbatch" {
		t.Errorf("expected Slurm.Command to be 'sbatch', got %q", cfg.Slurm.Command)
	}
	if cfg.Slurm.GPUGres != "gpu:a100:1" {
		t.Errorf("expected Slurm.GPUGres to be 'gpu:a100:1', got %q", cfg.Slurm.GPUGres)
	}
	if cfg.Slurm.MaxTasks != 16 {
		t.Errorf("expected Slurm.MaxTasks to be 16, got %d", cfg.Slurm.MaxTasks)
	}
}

func TestDefaultConfig_Paths(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Paths.ScratchDir != "/ssd/home/$USER/TEMP" {
		t.Errorf("unexpected ScratchDir %q", cfg.Paths.ScratchDir)
	}
	if cfg.Paths.SharedDir != "/mnt/home/shared/" {
		t.Errorf("unexpected SharedDir %q", cfg.Paths.SharedDir)
	}
	if cfg.Paths.AuthFile != "/mnt/apps/etc/auth.json" {
		t.Errorf("unexpected AuthFile %q", cfg.Paths.AuthFile)
	}
}

func TestDefaultConfig_Freesurfer(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Freesurfer.Repository != "docker.io/freesurfer/freesurfer" {
		t.Errorf("unexpected Repository %q", cfg.Freesurfer.Repository)
	}
	if cfg.Freesurfer.Tag != "7.3.2" {
		t.Errorf("expected Tag to be '7.3.2', got %q", cfg.Freesurfer.Tag)
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := validateConfig(DefaultConfig()); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}
