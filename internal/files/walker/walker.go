// Package walker turns a directory traversal into a lazy sequence of the
// regular files below a scan root.
package walker

import (
	"errors"
	"iter"
	"path"

	"github.com/vvka-141/secretscan/internal/files/filesystem"
	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// Entry is a regular file yielded by Walk.
type Entry struct {
	File filesystem.File

	// RelativePath is the slash-separated path relative to the scan root.
	RelativePath string

	// Directory is the slash-separated parent directory relative to the
	// scan root, "." for files directly in the root.
	Directory string
}

// errStop aborts the underlying walk when the consumer stops ranging.
var errStop = errors.New("walk stopped")

// Walk returns a single-use sequence of the regular files under dir.
// Directories and special entries are not yielded. Symlinks are yielded only
// when the provider reports them as regular files.
// Entries that cannot be enumerated are logged and skipped; they never end
// the sequence early. Each call starts a fresh traversal.
func Walk(dir filesystem.Directory, logger secretscan.Logger) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		err := dir.Walk(func(file filesystem.File, err error) error {
			if err != nil {
				logger.Error("Skipping entry: %v", err)
				return nil
			}

			mode := file.Info().Mode()
			if mode.IsDir() {
				return nil
			}
			if !mode.IsRegular() {
				logger.Verbose("Skipping non-regular file %s (%s)", file.RelativePath(), mode.Type())
				return nil
			}

			rel := file.RelativePath()
			if !yield(Entry{File: file, RelativePath: rel, Directory: path.Dir(rel)}) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			logger.Error("Directory walk ended early: %v", err)
		}
	}
}
