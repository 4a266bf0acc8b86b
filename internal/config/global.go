package config

import (
	"os"
	"path/filepath"
)

// ConfigPathEnv names the environment variable that points at a config file.
const ConfigPathEnv = "IHN_HPC_SBATCH_CONFIG"

// DefaultConfigPath returns $IHN_HPC_SBATCH_CONFIG if set, otherwise
// ~/.config/ihn-hpc-sbatch/config.yaml. It returns "" when neither can be
// determined.
func DefaultConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// No home directory; fall back to defaults
		return ""
	}

	return filepath.Join(configDir, "ihn-hpc-sbatch", "config.yaml")
}
