package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/saltbundle/internal/adapters/daemon"    //nolint:depguard // Wired in app layer
	"go.trai.ch/saltbundle/internal/adapters/fuse"      //nolint:depguard // Wired in app layer
	"go.trai.ch/saltbundle/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/saltbundle/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/saltbundle/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/saltbundle/internal/engine/fileserver"
)

const (
	// HostNodeID is the unique identifier for the Host Graft node.
	HostNodeID graft.ID = "app.host"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line needs.
type Components struct {
	App        *App
	Logger     ports.Logger
	HostLoader *config.HostLoader
}

func init() {
	graft.Register(graft.Node[*Host]{
		ID:        HostNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fileserver.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Host, error) {
			engine, err := graft.Dep[*fileserver.Engine](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewHost(engine, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fileserver.NodeID,
			HostNodeID,
			logger.NodeID,
			daemon.NodeID,
			daemon.SpawnerNodeID,
			fuse.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.HostLoaderNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*config.HostLoader](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, HostLoader: loader}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	engine, err := graft.Dep[*fileserver.Engine](ctx)
	if err != nil {
		return nil, err
	}
	host, err := graft.Dep[*Host](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	connector, err := graft.Dep[ports.DaemonConnector](ctx)
	if err != nil {
		return nil, err
	}
	spawner, err := graft.Dep[*daemon.Spawner](ctx)
	if err != nil {
		return nil, err
	}
	mounter, err := graft.Dep[ports.Mounter](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}
	return New(engine, host, log, connector, spawner, mounter, watchers), nil
}
