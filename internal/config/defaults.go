package config

const (
	DefaultSbatchCommand = "sbatch"
	DefaultGPUGres       = "gpu:a100:1"
	DefaultMaxTasks      = 16
	DefaultScratchDir    = "/ssd/home/$USER/TEMP"
	DefaultSharedDir     = "/mnt/home/shared/"
	DefaultAuthFile      = "/mnt/apps/etc/auth.json"
	DefaultLogLevel      = "info"

	DefaultFreesurferRepository    = "docker.io/freesurfer/freesurfer"
	DefaultFreesurferTag           = "7.3.2"
	DefaultFreesurferLicenseFile   = "/mnt/apps/etc/fs_license.txt"
	DefaultFreesurferMatlabRuntime = "/opt/matlab/runtime/R2019b/v97/"
)

// DefaultConfig returns a Config populated with the cluster's stock paths.
func DefaultConfig() *Config {
	return &Config{
		Slurm: SlurmConfig{
			Command:  DefaultSbatchCommand,
			GPUGres:  DefaultGPUGres,
			MaxTasks: DefaultMaxTasks,
		},
		Paths: PathsConfig{
			ScratchDir: DefaultScratchDir,
			SharedDir:  DefaultSharedDir,
			AuthFile:   DefaultAuthFile,
		},
		Freesurfer: FreesurferConfig{
			Repository:    DefaultFreesurferRepository,
			Tag:           DefaultFreesurferTag,
			LicenseFile:   DefaultFreesurferLicenseFile,
			MatlabRuntime: DefaultFreesurferMatlabRuntime,
		},
		LogLevel: DefaultLogLevel,
	}
}
