package sweep

import (
	iofs "io/fs"
	"path/filepath"
	"time"
)

// DeletionCandidates walks root recursively and returns every regular file
// older than days. Symlinks are not followed. Unreadable subtrees are
// reported as failures and the walk goes on.
func (s *Sweeper) DeletionCandidates(root string, days int) ([]Candidate, []Failure) {
	now := s.now()

	var (
		out      []Candidate
		failures []Failure
	)

	_ = s.fs.Walk(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("scan: cannot read", "path", path, "error", err)
			failures = append(failures, Failure{Path: path, Err: err})
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if c, ok := s.match(path, days, now, &failures); ok {
			out = append(out, c)
		}
		return nil
	})

	return out, failures
}

// ArchiveCandidates lists regular files directly inside root that are older
// than days. Nothing below root is visited.
func (s *Sweeper) ArchiveCandidates(root string, days int) ([]Candidate, []Failure, error) {
	now := s.now()

	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, nil, err
	}

	var (
		out      []Candidate
		failures []Failure
	)
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if c, ok := s.match(filepath.Join(root, e.Name()), days, now, &failures); ok {
			out = append(out, c)
		}
	}
	return out, failures, nil
}

func (s *Sweeper) match(path string, days int, now time.Time, failures *[]Failure) (Candidate, bool) {
	info, err := s.fs.Lstat(path)
	if err != nil {
		// vanished between listing and stat: nothing to do
		if isNotExist(err) {
			return Candidate{}, false
		}
		s.log.Warn("scan: stat failed", "path", path, "error", err)
		*failures = append(*failures, Failure{Path: path, Err: err})
		return Candidate{}, false
	}
	if !info.IsRegular() || !OlderThan(now, info.MTime, days) {
		return Candidate{}, false
	}
	return FromFileInfo(info), true
}
