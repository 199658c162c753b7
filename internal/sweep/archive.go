package sweep

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/raoulx24/dirsweep/internal/config"
)

var (
	ErrArchiveMissing = errors.New("archive directory does not exist")
	ErrNameExhausted  = errors.New("no free name in archive")
)

// maxSuffix bounds the search for a free "<stem>.N<ext>" name.
const maxSuffix = 10000

// Archive moves each candidate into archiveDir under its own name. policy
// decides what happens when that name is taken; see the config.Conflict*
// constants. The archive directory is never created here.
func (s *Sweeper) Archive(ctx context.Context, cands []Candidate, archiveDir, policy string) Result {
	res := Result{Matched: cands}
	if len(cands) == 0 {
		return res
	}

	if info, err := s.fs.Lstat(archiveDir); err != nil || !info.Mode.IsDir() {
		s.log.Warn("archive directory missing, nothing will be moved", "dir", archiveDir, "candidates", len(cands))
		for _, c := range cands {
			res.fail(c.Path, fmt.Errorf("%w: %s", ErrArchiveMissing, archiveDir))
		}
		return res
	}

	for _, c := range cands {
		if ctx.Err() != nil {
			return res
		}
		dst, ok, err := s.destination(archiveDir, c.Name, policy)
		if err != nil {
			s.log.Warn("archive: cannot choose destination", "path", c.Path, "error", err)
			res.fail(c.Path, err)
			continue
		}
		if !ok {
			s.log.Info("archive: name taken, skipping", "path", c.Path, "dir", archiveDir)
			res.Skipped = append(res.Skipped, c.Path)
			continue
		}

		if s.dryRun {
			s.log.Info("dry run: would archive", "path", c.Path, "to", dst)
			res.Acted = append(res.Acted, dst)
			continue
		}

		if err := s.fs.Move(ctx, c.Path, dst); err != nil {
			if isNotExist(err) {
				if _, serr := s.fs.Lstat(c.Path); isNotExist(serr) {
					s.log.Debug("archive: already gone", "path", c.Path)
					res.Skipped = append(res.Skipped, c.Path)
					continue
				}
			}
			s.log.Warn("archive failed", "path", c.Path, "to", dst, "error", err)
			res.fail(c.Path, err)
			continue
		}

		s.log.Debug("archived", "path", c.Path, "to", dst)
		res.Acted = append(res.Acted, dst)
	}

	return res
}

// ArchiveSweep moves top-level files of root older than days into archiveDir.
// Paths in deleted were already handled by the deletion sweep and are left
// out, which matters in dry-run mode where they are still on disk.
func (s *Sweeper) ArchiveSweep(ctx context.Context, root string, days int, archiveDir, policy string, deleted []string) Result {
	cands, scanFailures, err := s.ArchiveCandidates(root, days)
	if err != nil {
		s.log.Warn("archive: cannot list", "dir", root, "error", err)
		return Result{Failures: []Failure{{Path: root, Err: err}}}
	}
	res := s.Archive(ctx, without(cands, deleted), archiveDir, policy)
	res.Failures = append(scanFailures, res.Failures...)
	return res
}

// destination picks the target path for name. ok is false when policy says
// to leave the file where it is.
func (s *Sweeper) destination(dir, name, policy string) (string, bool, error) {
	dst := filepath.Join(dir, name)
	taken, err := s.exists(dst)
	if err != nil {
		return "", false, err
	}
	if !taken {
		return dst, true, nil
	}

	switch policy {
	case config.ConflictOverwrite:
		return dst, true, nil
	case config.ConflictSkip:
		return "", false, nil
	case config.ConflictRename, "":
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		for i := 1; i <= maxSuffix; i++ {
			alt := filepath.Join(dir, stem+"."+strconv.Itoa(i)+ext)
			taken, err := s.exists(alt)
			if err != nil {
				return "", false, err
			}
			if !taken {
				return alt, true, nil
			}
		}
		return "", false, fmt.Errorf("%w: %s", ErrNameExhausted, name)
	default:
		return "", false, fmt.Errorf("unknown conflict policy %q", policy)
	}
}

func (s *Sweeper) exists(path string) (bool, error) {
	_, err := s.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

func without(cands []Candidate, paths []string) []Candidate {
	if len(paths) == 0 {
		return cands
	}
	drop := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		drop[p] = struct{}{}
	}
	out := cands[:0:0]
	for _, c := range cands {
		if _, ok := drop[c.Path]; !ok {
			out = append(out, c)
		}
	}
	return out
}
