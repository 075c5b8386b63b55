package daemon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the daemon connector Graft node.
	NodeID graft.ID = "adapter.daemon"
	// SpawnerNodeID is the unique identifier for the daemon spawner Graft node.
	SpawnerNodeID graft.ID = "adapter.daemon.spawner"
)

func init() {
	graft.Register(graft.Node[ports.DaemonConnector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DaemonConnector, error) {
			return NewConnector(), nil
		},
	})

	graft.Register(graft.Node[*Spawner]{
		ID:        SpawnerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Spawner, error) {
			return NewSpawner()
		},
	})
}
