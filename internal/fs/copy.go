package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// moveByCopy relocates src to dst when a rename cannot cross devices. The
// copy keeps mode and mtime, is aborted if src changes mid-copy, and src is
// removed only once dst is synced.
func moveByCopy(ctx context.Context, f FS, src, dst string) error {
	orig, err := f.Lstat(src)
	if err != nil {
		return err
	}

	err = retry(ctx, "copy", func() error {
		now, err := f.Lstat(src)
		if err != nil {
			return err
		}
		if sourceChanged(orig, now) {
			return errSourceChanged
		}
		return copyOnce(src, dst, orig)
	})
	if err != nil {
		_ = os.Remove(dst)
		return err
	}

	now, err := f.Lstat(src)
	if err != nil {
		return err
	}
	if sourceChanged(orig, now) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy: %w", errSourceChanged)
	}

	return f.Remove(ctx, src)
}

var errSourceChanged = errors.New("source changed during copy")

func sourceChanged(orig, now FileInfo) bool {
	if now.Inode != 0 && orig.Inode != 0 && now.Inode != orig.Inode {
		return true
	}
	if now.MTime.After(orig.MTime) {
		return true
	}
	if now.Size != orig.Size {
		return true
	}
	return false
}

func copyOnce(src, dst string, orig FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, orig.Mode.Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}
	if err := out.Chmod(orig.Mode.Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, orig.MTime, orig.MTime)
}
