package retry

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// FileErrorClassifier implements secretscan.ErrorClassifier for file reads.
//
// Only interruptions and momentary resource contention are transient.
// Permission, existence and directory errors are permanent: retrying them
// would only delay the skip.
type FileErrorClassifier struct{}

// NewFileErrorClassifier creates a new file read error classifier.
func NewFileErrorClassifier() *FileErrorClassifier {
	return &FileErrorClassifier{}
}

// IsTransient determines if a read error is temporary and retryable.
func (c *FileErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrInvalid),
		errors.Is(err, fs.ErrClosed):
		return false
	}

	if os.IsTimeout(err) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return isTransientErrno(errno)
	}

	return false
}

func isTransientErrno(errno syscall.Errno) bool {
	switch errno {
	case syscall.EINTR, syscall.EAGAIN, syscall.EBUSY, syscall.ENFILE, syscall.EMFILE:
		return true
	}
	return false
}
