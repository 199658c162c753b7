package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	old := retryBase
	retryBase = time.Millisecond
	t.Cleanup(func() { retryBase = old })

	t.Run("transient then success", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), "op", func() error {
			calls++
			if calls < 3 {
				return syscall.EBUSY
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("permanent fails fast", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), "op", func() error {
			calls++
			return syscall.EACCES
		})
		require.ErrorIs(t, err, syscall.EACCES)
		require.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), "op", func() error {
			calls++
			return syscall.EAGAIN
		})
		require.ErrorIs(t, err, syscall.EAGAIN)
		require.Equal(t, maxRetries, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retry(ctx, "op", func() error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestOSFSMoveAndRemove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.log")
	dst := filepath.Join(dir, "archive", "a.log")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	o := New()
	ctx := context.Background()

	require.NoError(t, o.Move(ctx, src, dst))
	_, err := o.Lstat(src)
	require.True(t, errors.Is(err, os.ErrNotExist))

	info, err := o.Lstat(dst)
	require.NoError(t, err)
	require.True(t, info.IsRegular())
	require.EqualValues(t, 5, info.Size)

	require.NoError(t, o.Remove(ctx, dst))
	err = o.Remove(ctx, dst)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMoveByCopyPreservesMetadata(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.txt")
	dst := filepath.Join(dir, "moved.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o600))

	mtime := time.Now().Add(-72 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	require.NoError(t, moveByCopy(context.Background(), New(), src, dst))

	_, err := os.Stat(src)
	require.ErrorIs(t, err, os.ErrNotExist)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))

	st, err := os.Stat(dst)
	require.NoError(t, err)
	require.True(t, st.ModTime().Equal(mtime))
	require.Equal(t, os.FileMode(0o600), st.Mode().Perm())
}

func TestSourceChanged(t *testing.T) {
	base := FileInfo{Size: 10, MTime: time.Unix(100, 0), Inode: 7}

	require.False(t, sourceChanged(base, base))

	grown := base
	grown.Size = 11
	require.True(t, sourceChanged(base, grown))

	touched := base
	touched.MTime = time.Unix(200, 0)
	require.True(t, sourceChanged(base, touched))

	replaced := base
	replaced.Inode = 8
	require.True(t, sourceChanged(base, replaced))

	unknownInode := base
	unknownInode.Inode = 0
	require.False(t, sourceChanged(base, unknownInode))
}

func TestSymlinkIsNotRegular(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	require.NoError(t, os.Symlink(target, link))

	info, err := New().Lstat(link)
	require.NoError(t, err)
	require.False(t, info.IsRegular())
}
