package fileserver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/adapters/config"
	"go.trai.ch/saltbundle/internal/adapters/fs"
	"go.trai.ch/saltbundle/internal/core/ports"
)

// NodeID is the graft node ID for the fileserver engine.
const NodeID graft.ID = "engine.fileserver"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LocatorNodeID,
			config.ParserNodeID,
			fs.ResolverNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			fs.ReaderNodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			locator, err := graft.Dep[ports.ConfigLocator](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.ProjectConfigParser](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.TreeWalker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ContentReader](ctx)
			if err != nil {
				return nil, err
			}
			return New(locator, parser, resolver, walker, hasher, reader), nil
		},
	})
}
