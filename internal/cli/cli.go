// Package cli defines the dirsweep command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/raoulx24/dirsweep/internal/config"
	"github.com/raoulx24/dirsweep/internal/logging"
	"github.com/raoulx24/dirsweep/internal/runner"
	"github.com/raoulx24/dirsweep/internal/sweep"
)

const (
	ExitOK       = 0
	ExitInvalid  = 1
	ExitFailures = 2

	// ExitInterrupted follows the shell convention for SIGINT.
	ExitInterrupted = 130
)

const usageLine = "Usage: dirsweep <targetDir> [deletionDays] [archiveDays]"

// ExitError carries the process exit status back to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

type options struct {
	configPath string
	dryRun     bool
	strict     bool
	onConflict string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the dirsweep command. Contract output goes to the
// command's stdout, logs and errors to its stderr.
func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dirsweep <targetDir> [deletionDays] [archiveDays]",
		Short: "Delete stale files and archive older top-level files",
		Long: `Delete every file under targetDir not modified for more than deletionDays
days (default 60), then move top-level files older than archiveDays days
(default 7) into targetDir/archive. The archive directory must already exist.

Settings can also be read from a YAML file given by --config or $` + config.EnvConfigPath + `.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML settings file")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print what would be deleted or archived without changing anything")
	f.BoolVar(&opts.strict, "strict", false, "Exit with status 2 if any file could not be deleted or archived")
	f.StringVar(&opts.onConflict, "on-conflict", config.ConflictRename, "Archive name collision policy: rename, overwrite or skip")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	// positional arguments are checked before the settings file is read
	cfg, err := config.ResolveArgs(args)
	if err != nil {
		if errors.Is(err, config.ErrMissingArgument) {
			err = fmt.Errorf("%w\n%s", err, usageLine)
		}
		return &ExitError{Code: ExitInvalid, Err: err}
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return &ExitError{Code: ExitInvalid, Err: err}
	}
	applyFlags(cmd, opts, &settings)
	if err := cfg.Apply(settings); err != nil {
		return &ExitError{Code: ExitInvalid, Err: err}
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	s := sweep.New(nil, log, sweep.WithDryRun(cfg.DryRun))
	rep, err := runner.New(cfg, s, log, stdout).Run(cmd.Context())
	if err != nil {
		log.Warn("run interrupted", "error", err)
		return &ExitError{Code: ExitInterrupted, Err: err}
	}

	if rep.HasFailures() {
		failures := rep.Failures()
		log.Warn("some files could not be processed", "count", len(failures))
		if cfg.Strict {
			return &ExitError{Code: ExitFailures, Err: fmt.Errorf("%d file(s) could not be processed", len(failures))}
		}
	}
	return nil
}

// applyFlags lets explicitly set flags win over the settings file.
func applyFlags(cmd *cobra.Command, opts options, s *config.Settings) {
	f := cmd.Flags()
	if f.Changed("dry-run") {
		s.DryRun = opts.dryRun
	}
	if f.Changed("strict") {
		s.Strict = opts.strict
	}
	if f.Changed("on-conflict") {
		s.Archive.OnConflict = opts.onConflict
	}
	if f.Changed("log-level") {
		s.Logging.Level = opts.logLevel
	}
	if f.Changed("log-format") {
		s.Logging.Format = opts.logFormat
	}
}

// Execute runs the command and returns the exit status, printing any
// error to errW.
func Execute(ctx context.Context, cmd *cobra.Command, args []string, errW io.Writer) int {
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(errW, "Error:", err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitInvalid
}
