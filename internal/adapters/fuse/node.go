package fuse

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/adapters/logger"
	"go.trai.ch/saltbundle/internal/core/ports"
)

// NodeID is the unique identifier for the FUSE mounter Graft node.
const NodeID graft.ID = "adapter.fuse"

func init() {
	graft.Register(graft.Node[ports.Mounter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Mounter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMounter(log), nil
		},
	})
}
