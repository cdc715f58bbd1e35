package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podlink/internal/core/ports"
)

// NodeID is the unique identifier for the integration state store Graft node.
const NodeID graft.ID = "adapter.integration_state_store"

func init() {
	graft.Register(graft.Node[ports.IntegrationStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IntegrationStateStore, error) {
			return NewStore(), nil
		},
	})
}
