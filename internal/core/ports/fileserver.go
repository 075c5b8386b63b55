package ports

import (
	"context"

	"go.trai.ch/saltbundle/internal/core/domain"
)

//go:generate mockgen -source=fileserver.go -destination=mocks/mock_fileserver.go -package=mocks

// Fileserver is the host-facing surface of the vendor namespace.
// Operations never fail: unresolved requests produce the canonical empty
// results and diagnostics go to the logger.
type Fileserver interface {
	// Envs lists the environments served.
	Envs(ctx context.Context) []string
	// FindFile resolves a virtual path in the given environment.
	FindFile(ctx context.Context, opts domain.HostOptions, path, saltenv string) domain.FileDescriptor
	// FileList lists every file of every formula.
	FileList(ctx context.Context, opts domain.HostOptions) []string
	// DirList lists every formula and every directory below it.
	DirList(ctx context.Context, opts domain.HostOptions) []string
	// FileHash digests the file at a virtual path.
	FileHash(ctx context.Context, opts domain.HostOptions, path, hashType string) domain.HashResult
	// ServeFile returns the content of the file at a virtual path.
	ServeFile(ctx context.Context, opts domain.HostOptions, path string) []byte
	// Update drops the vendor index.
	Update(ctx context.Context) bool
	// FileRoots lists the absolute formula directories.
	FileRoots(ctx context.Context, opts domain.HostOptions) []string
	// ExtPillar returns the external pillar for a minion.
	ExtPillar(ctx context.Context, opts domain.HostOptions, minionID string, pillar map[string]any) map[string]any
}

// Namespace browses the vendor namespace as a directory tree.
type Namespace interface {
	// Stat returns the entry at a virtual path; "" is the namespace root.
	Stat(ctx context.Context, opts domain.HostOptions, path string) (domain.Entry, error)
	// ReadDir lists the directory at a virtual path.
	ReadDir(ctx context.Context, opts domain.HostOptions, path string) ([]domain.Entry, error)
	// ReadFile returns the content of the file at a virtual path.
	ReadFile(ctx context.Context, opts domain.HostOptions, path string) ([]byte, error)
}
