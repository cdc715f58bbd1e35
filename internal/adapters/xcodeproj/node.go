package xcodeproj

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podlink/internal/core/domain"
)

// NodeID is the unique identifier for the project loader Graft node.
const NodeID graft.ID = "adapter.xcodeproj"

func init() {
	graft.Register(graft.Node[domain.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.ProjectLoader, error) {
			return NewLoader(), nil
		},
	})
}
