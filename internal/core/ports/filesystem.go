package ports

import (
	"iter"

	"go.trai.ch/saltbundle/internal/core/domain"
)

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// PathResolver resolves paths inside a formula root without leaving it.
// Returned entries carry the slash-separated path relative to the root in
// VirtualPath.
type PathResolver interface {
	// Resolve returns the file or directory at remainder inside root.
	Resolve(root, remainder string) (domain.Entry, error)
	// ReadDir lists the directory at remainder inside root.
	ReadDir(root, remainder string) ([]domain.Entry, error)
}

// TreeWalker enumerates a formula root recursively.
type TreeWalker interface {
	// Walk yields every directory and regular file below root, relative to it.
	Walk(root string) iter.Seq[domain.Entry]
}

// FileHasher computes content digests.
type FileHasher interface {
	// Hash streams the file at rel inside root through the named digest and
	// returns the lower-case hex digest. The file is opened without leaving
	// root.
	Hash(root, rel, algorithm string) (string, error)
	// Supports reports whether the named digest is available.
	Supports(algorithm string) bool
}

// ContentReader reads file contents.
type ContentReader interface {
	// ReadFile returns the full content of the file at rel inside root. The
	// file is opened without leaving root.
	ReadFile(root, rel string) ([]byte, error)
}
