package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Slurm.Command == "" {
		errs = append(errs, &ValidationError{
			Field:   "slurm.command",
			Value:   cfg.Slurm.Command,
			Message: "must not be empty",
		})
	}

	// Gres is spliced into a single sbatch argument
	if cfg.Slurm.GPUGres == "" || strings.ContainsAny(cfg.Slurm.GPUGres, " \t\n") {
		errs = append(errs, &ValidationError{
			Field:   "slurm.gpu_gres",
			Value:   cfg.Slurm.GPUGres,
			Message: "must be a non-empty value without whitespace",
		})
	}

	if cfg.Slurm.MaxTasks < 1 {
		errs = append(errs, &ValidationError{
			Field:   "slurm.max_tasks",
			Value:   cfg.Slurm.MaxTasks,
			Message: "must be at least 1",
		})
	}

	required := []struct {
		field string
		value string
	}{
		{"paths.scratch_dir", cfg.Paths.ScratchDir},
		{"paths.shared_dir", cfg.Paths.SharedDir},
		{"paths.auth_file", cfg.Paths.AuthFile},
		{"freesurfer.repository", cfg.Freesurfer.Repository},
		{"freesurfer.tag", cfg.Freesurfer.Tag},
		{"freesurfer.license_file", cfg.Freesurfer.LicenseFile},
		{"freesurfer.matlab_runtime", cfg.Freesurfer.MatlabRuntime},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, &ValidationError{
				Field:   r.field,
				Value:   r.value,
				Message: "must not be empty",
			})
		}
	}

	// LogLevel must be one of: debug, info, warn, error (case-sensitive)
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
