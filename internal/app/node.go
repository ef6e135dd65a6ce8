package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/gradle" //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the CLI needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gradle.NodeID,
			logger.NodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	adapter, err := graft.Dep[ports.TaskAdapter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, adapter, log, renderer), nil
}
