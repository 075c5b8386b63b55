package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the read-only view of the disk the locator and parser need.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// OSFS reads the real filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from the locator's own candidate list
	return os.ReadFile(path)
}

// RootedFS serves an fs.FS as the whole filesystem: the absolute path /a/b
// names a/b inside it. Relative paths are rejected with fs.ErrInvalid.
type RootedFS struct {
	fsys fs.FS
}

// NewRootedFS roots fsys at /.
func NewRootedFS(fsys fs.FS) *RootedFS {
	return &RootedFS{fsys: fsys}
}

// Stat returns file info for the given path.
func (r *RootedFS) Stat(path string) (fs.FileInfo, error) {
	name, err := r.name("stat", path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(r.fsys, name)
}

// ReadFile reads the entire file at path.
func (r *RootedFS) ReadFile(path string) ([]byte, error) {
	name, err := r.name("open", path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(r.fsys, name)
}

func (r *RootedFS) name(op, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", &fs.PathError{Op: op, Path: path, Err: fs.ErrInvalid}
	}
	name := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
	if name == "" {
		return ".", nil
	}
	return name, nil
}
