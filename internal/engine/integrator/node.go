package integrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podlink/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/podlink/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/podlink/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/podlink/internal/adapters/xcodeproj" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
)

// NodeID is the unique identifier for the integrator Graft node.
const NodeID graft.ID = "engine.integrator"

func init() {
	graft.Register(graft.Node[*Integrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			fs.HasherNodeID,
			xcodeproj.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Integrator, error) {
			store, err := graft.Dep[ports.IntegrationStateStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[domain.ProjectLoader](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewIntegrator(hasher, store, loader, tracer), nil
		},
	})
}
