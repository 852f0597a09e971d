package harness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/histo/internal/adapters/cas"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/histo/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/histo/internal/adapters/rng"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/histo/internal/core/ports"
)

// NodeID is the unique identifier for the harness Graft node.
const NodeID graft.ID = "engine.harness"

func init() {
	graft.Register(graft.Node[*Harness]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.StoreNodeID,
			cas.LockerNodeID,
			cas.HasherNodeID,
			rng.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Harness, error) {
			store, err := graft.Dep[ports.FixtureStore](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[ports.FixtureLocker](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			randomizer, err := graft.Dep[ports.Randomizer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, locker, hasher, randomizer, log), nil
		},
	})
}
