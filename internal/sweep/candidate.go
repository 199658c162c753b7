package sweep

import (
	"path/filepath"
	"time"

	"github.com/raoulx24/dirsweep/internal/fs"
)

const day = 24 * time.Hour

// Candidate is a regular file picked up by a scan.
type Candidate struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// FromFileInfo constructs a Candidate from an fs.FileInfo.
func FromFileInfo(info fs.FileInfo) Candidate {
	return Candidate{
		Path:    info.Path,
		Name:    filepath.Base(info.Path),
		Size:    info.Size,
		ModTime: info.MTime,
	}
}

// AgeDays is the number of whole days elapsed since mtime, rounded down.
// A modification time in the future gives a negative age.
func AgeDays(now, mtime time.Time) int {
	d := now.Sub(mtime)
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

// OlderThan reports whether more than days whole days have passed since
// mtime, the way find's "-mtime +N" does. A file exactly N days old is not
// older than N.
func OlderThan(now, mtime time.Time, days int) bool {
	return AgeDays(now, mtime) > days
}
