package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File for the OS filesystem
type osFile struct {
	absPath string
	relPath string
	info    fs.FileInfo
}

func (f *osFile) Path() string         { return f.absPath }
func (f *osFile) RelativePath() string { return f.relPath }
func (f *osFile) Info() FileInfo       { return f.info }

func (f *osFile) ReadContent() ([]byte, error) {
	return os.ReadFile(f.absPath)
}

// osDirectory implements Directory for the OS filesystem.
// absPath is the path as opened; walkPath is absPath with symlinks resolved.
type osDirectory struct {
	absPath  string
	walkPath string
}

func (d *osDirectory) Path() string { return d.absPath }

func (d *osDirectory) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(d.walkPath, func(path string, entry fs.DirEntry, walkErr error) error {
		if path == d.walkPath && walkErr == nil {
			return nil
		}

		relPath, relErr := filepath.Rel(d.walkPath, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
				}
			}()

			if walkErr != nil {
				callbackErr = fn(nil, &WalkError{RelativePath: relPath, Err: walkErr})
				return
			}

			info, err := entry.Info()
			if err != nil {
				callbackErr = fn(nil, &WalkError{RelativePath: relPath, Err: err})
				return
			}
			if info.Mode()&fs.ModeSymlink != 0 {
				info = resolveFileLink(path, info)
			}

			callbackErr = fn(&osFile{absPath: path, relPath: relPath, info: info}, nil)
		}()

		return callbackErr
	})
}

// resolveFileLink returns the target's info when a symlink points at a
// regular file. Links to directories and dangling links keep their Lstat
// info, so directory links are never descended into.
func resolveFileLink(path string, linkInfo fs.FileInfo) fs.FileInfo {
	target, err := os.Stat(path)
	if err != nil || !target.Mode().IsRegular() {
		return linkInfo
	}
	return target
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	walkPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	return &osDirectory{absPath: absPath, walkPath: walkPath}, nil
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
