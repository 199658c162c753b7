package fs

import (
	"errors"
	"syscall"
)

// helpers for classifying filesystem errors: transient ones are retried,
// cross-device renames switch to copy+remove, everything else fails fast.

func isTransient(err error) bool {
	if errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}
	return false
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
