package rng

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/histo/internal/core/ports"
)

// NodeID is the unique identifier for the randomizer Graft node.
const NodeID graft.ID = "adapter.randomizer"

func init() {
	graft.Register(graft.Node[ports.Randomizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Randomizer, error) {
			return New(), nil
		},
	})
}
