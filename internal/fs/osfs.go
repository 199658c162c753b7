package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// OSFS is the FS backed by the local operating system.
type OSFS struct{}

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Lstat(path string) (FileInfo, error) {
	st, err := os.Lstat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return fromOS(path, st), nil
}

func (o *OSFS) Walk(root string, fn iofs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (o *OSFS) ReadDir(dir string) ([]os.DirEntry, error) {
	return os.ReadDir(dir)
}

func (o *OSFS) Remove(ctx context.Context, path string) error {
	return retry(ctx, "remove", func() error {
		return os.Remove(path)
	})
}

func (o *OSFS) Move(ctx context.Context, src, dst string) error {
	err := retry(ctx, "rename", func() error {
		return os.Rename(src, dst)
	})
	if err == nil || !isCrossDevice(err) {
		return err
	}
	return moveByCopy(ctx, o, src, dst)
}

func fromOS(path string, st os.FileInfo) FileInfo {
	return FileInfo{
		Path:  path,
		Size:  st.Size(),
		Mode:  st.Mode(),
		MTime: st.ModTime(),
		Inode: inodeOf(st),
	}
}
