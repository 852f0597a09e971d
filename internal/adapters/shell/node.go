package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/histo/internal/adapters/logger"
	"go.trai.ch/histo/internal/core/ports"
)

// NodeID is the unique identifier for the solution factory Graft node.
const NodeID graft.ID = "adapter.solution_factory"

func init() {
	graft.Register(graft.Node[ports.SolutionFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SolutionFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
