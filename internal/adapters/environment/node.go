package environment

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dynctl/internal/core/domain"
)

// NodeID is the unique identifier for the environment Graft node.
const NodeID graft.ID = "adapter.environment"

func init() {
	graft.Register(graft.Node[*Environment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Environment, error) {
			return FromEnv(domain.ModeProduction)
		},
	})
}
