package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/config"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/logging"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/slurm"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Flags shared by the submit commands
	opts Options

	// Configuration (initialized lazily)
	config *config.Config

	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer

	// newSubmitter builds the sbatch backend; replaced in tests
	newSubmitter func(cfg *config.Config) slurm.Submitter

	versionInfo VersionInfo
}

// Options holds the persistent flags.
type Options struct {
	Tag        string
	SbatchArgs string
	PodmanArgs string
	ConfigPath string
	DryRun     bool
	Verbose    bool
}

// VersionInfo is stamped at build time.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.log = logging.New(app.stderr, config.DefaultLogLevel)
	app.newSubmitter = app.defaultSubmitter
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// SetOutput redirects script output and diagnostics.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.stdout = stdout
	a.stderr = stderr
	a.log.SetOutput(stderr)
	a.log.SetFormatter(&logging.Formatter{Color: logging.IsTerminal(stderr)})
	a.rootCmd.SetOut(stdout)
	a.rootCmd.SetErr(stderr)
}

// SetArgs overrides os.Args for the root command.
func (a *App) SetArgs(args []string) {
	a.rootCmd.SetArgs(args)
}

// ReportError prints err the way the process reports failure: a generic
// line when sbatch itself failed, otherwise the full error chain.
func (a *App) ReportError(err error) {
	if slurm.IsExitError(err) {
		a.log.Debug(err.Error())
		a.log.Error("Something went wrong...")
		return
	}
	a.log.Error(err.Error())
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "ihn-hpc-sbatch",
		Short: "Submit containerized jobs to Slurm",
		Long: `ihn-hpc-sbatch writes a Slurm batch script that runs a podman container
and pipes it to sbatch. Use "gpu" for a single GPU job and "array" for a
job array driven by a file of per-task arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := a.rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.Tag, "tag", "",
		"Podman image tag - ignored when IMAGE is fully qualified")
	flags.StringVar(&a.opts.SbatchArgs, "sbatch-args", "",
		"Additional args to sbatch")
	flags.StringVar(&a.opts.PodmanArgs, "podman-args", "",
		"Additional args to podman")
	flags.StringVar(&a.opts.ConfigPath, "config", "",
		"Config file (default $"+config.ConfigPathEnv+" or ~/.config/ihn-hpc-sbatch/config.yaml)")
	flags.BoolVar(&a.opts.DryRun, "dry-run", false,
		"Print the batch script instead of submitting it")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false,
		"Verbose output")

	a.rootCmd.AddCommand(
		NewGPUCmd(a),
		NewArrayCmd(a),
		NewConfigCmd(a),
		NewVersionCmd(a),
	)
}

// loadConfig reads the config once and applies its log level.
func (a *App) loadConfig() (*config.Config, error) {
	if a.config != nil {
		return a.config, nil
	}

	cfg, err := config.LoadConfig(a.opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	a.config = cfg

	level := cfg.LogLevel
	if a.opts.Verbose {
		level = "debug"
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		a.log.SetLevel(lvl)
	}

	return cfg, nil
}

func (a *App) defaultSubmitter(cfg *config.Config) slurm.Submitter {
	if a.opts.DryRun {
		return slurm.NewDryRun(cfg.Slurm.Command, a.stdout, a.log)
	}
	return slurm.NewSbatch(cfg.Slurm.Command, a.stdout, a.stderr, a.log)
}
