package ports

import "go.trai.ch/saltbundle/internal/core/domain"

//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLocator finds the project configuration file.
type ConfigLocator interface {
	// Locate returns the absolute path of the nearest configuration file for
	// the given host options, or domain.ErrConfigNotFound.
	Locate(opts domain.HostOptions) (string, error)
}

// ProjectConfigParser reads a project configuration file.
type ProjectConfigParser interface {
	// Parse decodes the configuration at path.
	Parse(path string) (domain.ProjectConfig, error)
}
