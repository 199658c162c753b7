// Package sweep selects files by age and applies the terminal action of a
// sweep to them: permanent removal, or relocation into the archive directory.
//
// Enumeration and action are separate steps. Scans only report candidates;
// Delete and Archive act on whatever list they are handed and never stop on
// a per-file error.
package sweep

import (
	"time"

	"github.com/raoulx24/dirsweep/internal/fs"
	"github.com/raoulx24/dirsweep/internal/logging"
)

// Sweeper carries the collaborators shared by every sweep.
type Sweeper struct {
	fs     fs.FS
	log    logging.Logger
	now    func() time.Time
	dryRun bool
}

type Option func(*Sweeper)

// WithClock replaces time.Now as the reference for file ages.
func WithClock(now func() time.Time) Option {
	return func(s *Sweeper) { s.now = now }
}

// WithDryRun reports matches without removing or moving anything.
func WithDryRun(dry bool) Option {
	return func(s *Sweeper) { s.dryRun = dry }
}

// New creates a Sweeper. A nil filesystem means the local OS.
func New(filesystem fs.FS, log logging.Logger, opts ...Option) *Sweeper {
	if filesystem == nil {
		filesystem = fs.New()
	}
	s := &Sweeper{
		fs:  filesystem,
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
