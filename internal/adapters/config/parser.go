package config

import (
	"errors"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectConfigParser = (*Parser)(nil)

// Parser implements ports.ProjectConfigParser for YAML documents.
type Parser struct {
	fs FileSystem
}

// NewParser creates a Parser reading through fs.
func NewParser(fs FileSystem) *Parser {
	return &Parser{fs: fs}
}

// Parse reads the project configuration at path.
func (p *Parser) Parse(path string) (domain.ProjectConfig, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return domain.ProjectConfig{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "read project config"), "path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.ProjectConfig{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "decode project config"), "path", path)
	}

	if len(doc.Content) == 0 {
		return domain.ProjectConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "document is empty"), "path", path)
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return domain.ProjectConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "document is not a mapping"), "path", path)
	}

	var file ProjectFile
	if err := doc.Content[0].Decode(&file); err != nil {
		return domain.ProjectConfig{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "decode project config"), "path", path)
	}

	return domain.ProjectConfig{
		Path:      path,
		Name:      file.Project,
		VendorDir: file.VendorDir,
	}, nil
}
