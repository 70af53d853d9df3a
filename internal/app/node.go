package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/datagen/internal/adapters/blob"     //nolint:depguard // Wired in app layer
	"go.trai.ch/datagen/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/datagen/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/datagen/internal/adapters/provider" //nolint:depguard // Wired in app layer
	"go.trai.ch/datagen/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			provider.NodeID,
			blob.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
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

	factory, err := graft.Dep[ports.ProviderFactory](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.BlobSink](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, factory, sink), nil
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

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, loader), nil
}
