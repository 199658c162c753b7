// Package runner executes one dirsweep run: the deletion sweep to completion,
// then the archive sweep.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/raoulx24/dirsweep/internal/config"
	"github.com/raoulx24/dirsweep/internal/logging"
	"github.com/raoulx24/dirsweep/internal/sweep"
)

// Runner ties a validated Config to a Sweeper and the output stream.
type Runner struct {
	cfg     config.Config
	sweeper *sweep.Sweeper
	log     logging.Logger
	out     io.Writer
}

// Report holds the outcome of both sweeps.
type Report struct {
	Deletion sweep.Result
	Archive  sweep.Result
}

// HasFailures reports whether any file could not be handled.
func (r Report) HasFailures() bool {
	return len(r.Deletion.Failures) > 0 || len(r.Archive.Failures) > 0
}

// Failures returns every per-file failure, deletion sweep first.
func (r Report) Failures() []sweep.Failure {
	out := make([]sweep.Failure, 0, len(r.Deletion.Failures)+len(r.Archive.Failures))
	out = append(out, r.Deletion.Failures...)
	return append(out, r.Archive.Failures...)
}

// New creates a runner. Contract lines go to out; everything else is logged.
func New(cfg config.Config, s *sweep.Sweeper, log logging.Logger, out io.Writer) *Runner {
	return &Runner{
		cfg:     cfg,
		sweeper: s,
		log:     log,
		out:     out,
	}
}

// Run performs both sweeps. The order matters: a top-level file old enough
// for both thresholds is deleted, never archived. If ctx is cancelled the run
// stops after the file in progress and returns ctx.Err() without printing the
// completion line.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	cfg := r.cfg
	r.log.Debug("run starting",
		"target", cfg.TargetDir,
		"deletionDays", cfg.DeletionDays,
		"archiveDays", cfg.ArchiveDays,
		"onConflict", cfg.OnConflict,
		"dryRun", cfg.DryRun)

	var rep Report

	fmt.Fprintf(r.out, "Scanning %s for files older than %d days...\n", cfg.TargetDir, cfg.DeletionDays)
	rep.Deletion = r.sweeper.DeletionSweep(ctx, cfg.TargetDir, cfg.DeletionDays, r.out)
	r.log.Debug("deletion sweep done",
		"matched", len(rep.Deletion.Matched),
		"deleted", len(rep.Deletion.Acted),
		"failed", len(rep.Deletion.Failures))
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	rep.Archive = r.sweeper.ArchiveSweep(ctx, cfg.TargetDir, cfg.ArchiveDays, cfg.ArchiveDir(), cfg.OnConflict, rep.Deletion.Acted)
	r.log.Debug("archive sweep done",
		"matched", len(rep.Archive.Matched),
		"archived", len(rep.Archive.Acted),
		"skipped", len(rep.Archive.Skipped),
		"failed", len(rep.Archive.Failures))
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	fmt.Fprintln(r.out, "Cleanup complete.")
	return rep, nil
}
