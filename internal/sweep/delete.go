package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Delete prints each candidate's path to out and then removes it.
func (s *Sweeper) Delete(ctx context.Context, cands []Candidate, out io.Writer) Result {
	res := Result{Matched: cands}

	for _, c := range cands {
		if ctx.Err() != nil {
			return res
		}
		fmt.Fprintln(out, c.Path)

		if s.dryRun {
			s.log.Info("dry run: would delete", "path", c.Path)
			res.Acted = append(res.Acted, c.Path)
			continue
		}

		if err := s.fs.Remove(ctx, c.Path); err != nil {
			if isNotExist(err) {
				s.log.Debug("delete: already gone", "path", c.Path)
				res.Skipped = append(res.Skipped, c.Path)
				continue
			}
			s.log.Warn("delete failed", "path", c.Path, "error", err)
			res.fail(c.Path, err)
			continue
		}

		s.log.Debug("deleted", "path", c.Path, "modified", c.ModTime)
		res.Acted = append(res.Acted, c.Path)
	}

	return res
}

// DeletionSweep scans root recursively and deletes everything older than days.
func (s *Sweeper) DeletionSweep(ctx context.Context, root string, days int, out io.Writer) Result {
	cands, scanFailures := s.DeletionCandidates(root, days)
	res := s.Delete(ctx, cands, out)
	res.Failures = append(scanFailures, res.Failures...)
	return res
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
