package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/histo/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/histo/internal/engine/harness"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.StoreNodeID,
			shell.NodeID,
			harness.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.FixtureStore](ctx)
	if err != nil {
		return nil, err
	}

	solutions, err := graft.Dep[ports.SolutionFactory](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[*harness.Harness](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, store, solutions, h), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
