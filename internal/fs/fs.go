// Package fs defines the filesystem abstraction used by dirsweep.
// It provides the FS interface, the FileInfo type and the OS-backed
// implementation with retry on transient errors.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	Mode  os.FileMode
	MTime time.Time
	Inode uint64
}

// IsRegular reports whether the entry is a plain file. Symlinks are not.
func (fi FileInfo) IsRegular() bool {
	return fi.Mode.IsRegular()
}

type FS interface {
	// Lstat describes path without following a final symlink.
	Lstat(path string) (FileInfo, error)
	// Walk visits root and everything below it in lexical order.
	Walk(root string, fn iofs.WalkDirFunc) error
	// ReadDir lists the direct children of dir.
	ReadDir(dir string) ([]os.DirEntry, error)
	Remove(ctx context.Context, path string) error
	// Move renames src to dst, replacing dst if it exists. Moves across
	// devices fall back to copy and remove.
	Move(ctx context.Context, src, dst string) error
}
