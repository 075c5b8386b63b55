package fileserver

import (
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Stat returns the namespace entry at virtualPath. The empty path is the
// namespace root, whose children are the formulas.
func (e *Engine) Stat(opts domain.HostOptions, virtualPath string) (domain.Entry, error) {
	if virtualPath == "" {
		idx, err := e.Index(opts)
		if idx == nil {
			return domain.Entry{}, err
		}
		return domain.Entry{RealPath: idx.Project().VendorPath(), Dir: true}, nil
	}

	formula, remainder := domain.SplitVirtualPath(virtualPath)
	root, err := e.formulaRoot(opts, formula)
	if err != nil {
		return domain.Entry{}, err
	}

	entry, err := e.resolver.Resolve(root, remainder)
	if err != nil {
		return domain.Entry{}, zerr.With(err, "formula", formula)
	}
	entry.VirtualPath = domain.JoinVirtualPath(formula, entry.VirtualPath)
	return entry, nil
}

// ReadDir lists the children of the directory at virtualPath.
func (e *Engine) ReadDir(opts domain.HostOptions, virtualPath string) ([]domain.Entry, error) {
	if virtualPath == "" {
		return e.readRoot(opts)
	}

	formula, remainder := domain.SplitVirtualPath(virtualPath)
	root, err := e.formulaRoot(opts, formula)
	if err != nil {
		return nil, err
	}

	entries, err := e.resolver.ReadDir(root, remainder)
	if err != nil {
		return nil, zerr.With(err, "formula", formula)
	}
	for i := range entries {
		entries[i].VirtualPath = domain.JoinVirtualPath(formula, entries[i].VirtualPath)
	}
	return entries, nil
}

func (e *Engine) readRoot(opts domain.HostOptions) ([]domain.Entry, error) {
	idx, err := e.Index(opts)
	if idx == nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, idx.Len())
	for name, root := range idx.All() {
		entry, rerr := e.resolver.Resolve(root, "")
		if rerr != nil {
			continue
		}
		entry.VirtualPath = name
		entries = append(entries, entry)
	}
	return entries, err
}
