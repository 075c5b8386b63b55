// Package config locates and reads the project configuration and assembles
// host options.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLocator = (*Locator)(nil)

// Locator implements ports.ConfigLocator by probing directories for
// domain.ConfigFileName.
type Locator struct {
	fs FileSystem
}

// NewLocator creates a Locator over fs.
func NewLocator(fs FileSystem) *Locator {
	return &Locator{fs: fs}
}

// Locate returns the nearest configuration file for opts. The parent of
// opts.ConfigDir is probed first, then opts.Cwd and each of its ancestors.
func (l *Locator) Locate(opts domain.HostOptions) (string, error) {
	if opts.ConfigDir != "" {
		parent := filepath.Dir(absolute(opts.ConfigDir))
		if path, ok := l.probe(parent); ok {
			return path, nil
		}
	}

	cwd := opts.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(errors.Join(domain.ErrConfigNotFound, err), "resolve working directory")
		}
		cwd = wd
	}

	currentDir := absolute(cwd)
	for {
		if path, ok := l.probe(currentDir); ok {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "search exhausted"), "cwd", cwd)
}

func (l *Locator) probe(dir string) (string, bool) {
	candidate := filepath.Join(dir, domain.ConfigFileName)
	info, err := l.fs.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	return candidate, true
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
