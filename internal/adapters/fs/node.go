package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/core/ports"
)

const (
	// WalkerNodeID is the graft node ID for the tree walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the graft node ID for the path resolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the graft node ID for the file hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ReaderNodeID is the graft node ID for the content reader.
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	graft.Register(graft.Node[ports.TreeWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ContentReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentReader, error) {
			return NewReader(), nil
		},
	})
}
