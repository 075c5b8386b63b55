package domain

import "path/filepath"

// ProjectConfig is the part of the project configuration the namespace needs.
type ProjectConfig struct {
	// Path is the absolute path of the configuration file.
	Path string
	// Name is the optional project name.
	Name string
	// VendorDir is the configured vendor directory, relative to the project root
	// unless absolute.
	VendorDir string
}

// ProjectDir returns the directory holding the configuration file.
func (p ProjectConfig) ProjectDir() string {
	return filepath.Dir(p.Path)
}

// VendorDirName returns the configured vendor directory or DefaultVendorDir.
func (p ProjectConfig) VendorDirName() string {
	if p.VendorDir == "" {
		return DefaultVendorDir
	}
	return p.VendorDir
}

// VendorPath returns the absolute vendor directory.
func (p ProjectConfig) VendorPath() string {
	dir := p.VendorDirName()
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(p.ProjectDir(), dir)
}
