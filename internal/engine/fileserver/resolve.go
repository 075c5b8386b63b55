package fileserver

import (
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve maps a virtual path onto a regular file inside its formula.
// The formula root itself and directories never resolve.
func (e *Engine) Resolve(opts domain.HostOptions, virtualPath string) (domain.FileDescriptor, error) {
	formula, remainder := domain.SplitVirtualPath(virtualPath)

	root, err := e.formulaRoot(opts, formula)
	if err != nil {
		return domain.FileDescriptor{}, err
	}
	if remainder == "" {
		return domain.FileDescriptor{}, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "formula root is a directory"),
			"path", virtualPath)
	}

	entry, err := e.resolver.Resolve(root, remainder)
	if err != nil {
		return domain.FileDescriptor{}, zerr.With(err, "formula", formula)
	}
	if entry.Dir {
		return domain.FileDescriptor{}, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "path is a directory"),
			"path", virtualPath)
	}

	stat := entry.Stat
	return domain.FileDescriptor{
		RealPath:    entry.RealPath,
		VirtualPath: domain.JoinVirtualPath(formula, entry.VirtualPath),
		Stat:        &stat,
		Root:        root,
	}, nil
}

func (e *Engine) formulaRoot(opts domain.HostOptions, formula string) (string, error) {
	idx, err := e.Index(opts)
	if err != nil {
		return "", err
	}
	root, ok := idx.Root(formula)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "formula not in vendor index"), "formula", formula)
	}
	return root, nil
}
