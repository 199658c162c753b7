//go:build !unix

package fs

import "os"

// No POSIX inode here; change detection falls back to size and mtime.
func inodeOf(os.FileInfo) uint64 {
	return 0
}
