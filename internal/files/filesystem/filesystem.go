package filesystem

import (
	"fmt"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents a single entry discovered while walking a directory.
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the slash-separated path relative to the walk root
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo

	// ReadContent returns the entry's raw bytes
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files.
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for
	// every file and directory below the root (the root itself excluded).
	// Enumeration failures are reported as a *WalkError with a nil File.
	// If fn returns an error, walking stops and that error is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances.
type FileSystemProvider interface {
	// Open opens a directory at the specified path.
	// Fails if the path does not exist or is not a directory.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// WalkError reports an entry that could not be enumerated.
type WalkError struct {
	// RelativePath is the slash-separated path of the failing entry.
	RelativePath string
	Err          error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.RelativePath, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }
