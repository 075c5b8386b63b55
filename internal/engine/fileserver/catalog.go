package fileserver

import (
	"slices"

	"go.trai.ch/saltbundle/internal/core/domain"
)

// ListFiles returns the virtual path of every regular file of every formula,
// sorted.
func (e *Engine) ListFiles(opts domain.HostOptions) ([]string, error) {
	idx, err := e.Index(opts)
	if err != nil {
		return []string{}, err
	}

	files := []string{}
	for name, root := range idx.All() {
		for entry := range e.walker.Walk(root) {
			if entry.Dir {
				continue
			}
			files = append(files, domain.JoinVirtualPath(name, entry.VirtualPath))
		}
	}
	slices.Sort(files)
	return files, nil
}

// ListDirectories returns every formula name and the virtual path of every
// directory below it, sorted and deduplicated.
func (e *Engine) ListDirectories(opts domain.HostOptions) ([]string, error) {
	idx, err := e.Index(opts)
	if err != nil {
		return []string{}, err
	}

	dirs := idx.Names()
	for name, root := range idx.All() {
		for entry := range e.walker.Walk(root) {
			if entry.Dir {
				dirs = append(dirs, domain.JoinVirtualPath(name, entry.VirtualPath))
			}
		}
	}
	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}

// FileRoots returns the absolute formula roots ordered by formula name.
func (e *Engine) FileRoots(opts domain.HostOptions) ([]string, error) {
	idx, err := e.Index(opts)
	return idx.Roots(), err
}

// Pillar describes the vendored formulas. When the vendor directory is
// missing the pillar still names the project, with empty formula lists.
func (e *Engine) Pillar(opts domain.HostOptions) (domain.Pillar, error) {
	idx, err := e.Index(opts)
	if idx == nil {
		return domain.Pillar{}, err
	}
	return domain.NewPillar(idx), err
}
