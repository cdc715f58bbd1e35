package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podlink/internal/adapters/fs" //nolint:depguard // sandbox layout lives in the fs adapter
	"go.trai.ch/podlink/internal/adapters/logger"
	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, func(root string) domain.Sandbox {
				return fs.NewSandbox(root)
			}), nil
		},
	})
}
