package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/adapters/logger"
	"go.trai.ch/saltbundle/internal/core/ports"
)

const (
	// LocatorNodeID is the graft node ID for the config locator.
	LocatorNodeID graft.ID = "adapter.config.locator"
	// ParserNodeID is the graft node ID for the project config parser.
	ParserNodeID graft.ID = "adapter.config.parser"
	// HostLoaderNodeID is the graft node ID for the host options loader.
	HostLoaderNodeID graft.ID = "adapter.config.host_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLocator, error) {
			return NewLocator(NewOSFS()), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectConfigParser]{
		ID:        ParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectConfigParser, error) {
			return NewParser(NewOSFS()), nil
		},
	})

	graft.Register(graft.Node[*HostLoader]{
		ID:        HostLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*HostLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHostLoader(log), nil
		},
	})
}
