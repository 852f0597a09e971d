package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/histo/internal/adapters/logger"
	"go.trai.ch/histo/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the fixture store Graft node.
	StoreNodeID graft.ID = "adapter.fixture_store"
	// LockerNodeID is the unique identifier for the fixture locker Graft node.
	LockerNodeID graft.ID = "adapter.fixture_locker"
	// HasherNodeID is the unique identifier for the dataset hasher Graft node.
	HasherNodeID graft.ID = "adapter.dataset_hasher"
)

func init() {
	graft.Register(graft.Node[ports.FixtureStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FixtureStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})

	graft.Register(graft.Node[ports.FixtureLocker]{
		ID:        LockerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FixtureLocker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocker(log), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
