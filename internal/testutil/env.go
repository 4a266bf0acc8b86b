package testutil

import "testing"

var configEnvVars = []string{
	"IHN_HPC_SBATCH_CONFIG",
	"IHN_HPC_SBATCH_CMD",
	"IHN_HPC_GPU_GRES",
	"IHN_HPC_MAX_TASKS",
	"IHN_HPC_SCRATCH_DIR",
	"IHN_HPC_AUTH_FILE",
	"IHN_HPC_LOG_LEVEL",
}

// IsolateConfig clears config overrides from the environment and points
// HOME and XDG_CONFIG_HOME at an empty directory for the rest of the test.
func IsolateConfig(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
}
