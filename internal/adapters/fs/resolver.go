package fs

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver resolves paths inside a root through os.Root, so neither ".."
// segments nor symbolic links can reach outside it.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the entry at remainder inside root. Symbolic links are
// followed as long as they stay inside root.
func (r *Resolver) Resolve(root, remainder string) (domain.Entry, error) {
	rel, err := localPath(remainder)
	if err != nil {
		return domain.Entry{}, err
	}

	osRoot, err := openRoot(root)
	if err != nil {
		return domain.Entry{}, err
	}
	defer osRoot.Close() //nolint:errcheck // read-only handle

	info, err := osRoot.Stat(filepath.FromSlash(rel))
	if err != nil {
		return domain.Entry{}, notFound(err, root, remainder)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return domain.Entry{}, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "not a regular file"), "path", remainder)
	}

	return newEntry(root, rel, info), nil
}

// ReadDir lists the directory at remainder inside root. Children that are
// neither directories nor regular files, including links leaving root, are
// omitted.
func (r *Resolver) ReadDir(root, remainder string) ([]domain.Entry, error) {
	rel, err := localPath(remainder)
	if err != nil {
		return nil, err
	}

	osRoot, err := openRoot(root)
	if err != nil {
		return nil, err
	}
	defer osRoot.Close() //nolint:errcheck // read-only handle

	dirEntries, err := fs.ReadDir(osRoot.FS(), rel)
	if err != nil {
		return nil, notFound(err, root, remainder)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		childRel := path.Join(rel, d.Name())
		info, err := osRoot.Stat(filepath.FromSlash(childRel))
		if err != nil {
			continue
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			continue
		}
		entries = append(entries, newEntry(root, childRel, info))
	}

	return entries, nil
}

// localPath validates a slash-separated remainder and returns its clean form,
// "." for the root itself.
func localPath(remainder string) (string, error) {
	if remainder == "" {
		return ".", nil
	}
	if strings.HasPrefix(remainder, "/") || !filepath.IsLocal(filepath.FromSlash(remainder)) {
		return "", zerr.With(zerr.Wrap(domain.ErrPathEscapesRoot, "remainder is not local"), "path", remainder)
	}
	return path.Clean(remainder), nil
}

func openRoot(root string) (*os.Root, error) {
	osRoot, err := os.OpenRoot(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrEntryNotFound, err), "open formula root"), "root", root)
	}
	return osRoot, nil
}

func notFound(err error, root, remainder string) error {
	return zerr.With(zerr.With(zerr.Wrap(errors.Join(domain.ErrEntryNotFound, err), "lookup failed"),
		"root", root), "path", remainder)
}

func newEntry(root, rel string, info fs.FileInfo) domain.Entry {
	virtual := rel
	if rel == "." {
		virtual = ""
	}
	return domain.Entry{
		VirtualPath: virtual,
		RealPath:    filepath.Join(root, filepath.FromSlash(rel)),
		Dir:         info.IsDir(),
		Stat:        fileStat(info),
	}
}
