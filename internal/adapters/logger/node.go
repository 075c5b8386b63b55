package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/saltbundle/internal/adapters/detector"
	"go.trai.ch/saltbundle/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			// Flags may still switch to JSON later; they never switch back.
			l := New()
			l.SetJSON(detector.DetectLogFormat() == detector.FormatJSON)
			return l, nil
		},
	})
}
