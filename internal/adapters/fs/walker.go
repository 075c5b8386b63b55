// Package fs provides file system adapters for resolving, walking, hashing
// and reading formula files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
)

var _ ports.TreeWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every directory and regular file below root in lexical order,
// with slash-separated paths relative to root. Symbolic links are yielded
// only when they resolve to a regular file inside root. Unreadable
// subtrees are skipped.
func (w *Walker) Walk(root string) iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		osRoot, err := os.OpenRoot(root)
		if err != nil {
			return
		}
		defer osRoot.Close() //nolint:errcheck // read-only handle

		_ = fs.WalkDir(osRoot.FS(), ".", func(rel string, d fs.DirEntry, err error) error {
			if err != nil {
				if rel == "." {
					return err
				}
				return nil
			}
			if rel == "." {
				return nil
			}

			info, ok := w.classify(osRoot, rel, d)
			if !ok {
				return nil
			}

			if !yield(newEntry(root, rel, info)) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) classify(osRoot *os.Root, rel string, d fs.DirEntry) (fs.FileInfo, bool) {
	switch {
	case d.IsDir(), d.Type().IsRegular():
		info, err := d.Info()
		return info, err == nil
	case d.Type()&fs.ModeSymlink != 0:
		info, err := osRoot.Stat(filepath.FromSlash(rel))
		if err != nil || !info.Mode().IsRegular() {
			return nil, false
		}
		return info, true
	default:
		return nil, false
	}
}
