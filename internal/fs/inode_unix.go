//go:build unix

package fs

import (
	"os"
	"syscall"
)

// inodeOf reads the inode from syscall.Stat_t. A cross-device copy compares
// it before and after to notice the source being replaced underneath it.
func inodeOf(info os.FileInfo) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0
	}
	return st.Ino
}
