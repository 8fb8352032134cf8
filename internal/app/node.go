package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dynctl/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/adapters/environment" //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/adapters/source"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/adapters/store"       //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
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
			environment.NodeID,
			logger.NodeID,
			fs.HasherNodeID,
			source.CatalogNodeID,
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
			config.NodeID,
			environment.NodeID,
			source.CatalogNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	env, err := graft.Dep[*environment.Environment](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := graft.Dep[*source.Catalog](ctx)
	if err != nil {
		return nil, err
	}
	catalog.AddController(NewSystemController())

	return New(loader, env, log, OpenBackends(catalog, hasher)), nil
}

// OpenBackends returns a BackendOpener that serves bindings from catalog and
// the store and definition directory named by the manifest.
func OpenBackends(catalog *source.Catalog, hasher ports.Hasher) BackendOpener {
	return func(m *domain.Manifest) (*Backends, error) {
		var defs ports.DefinitionStore
		if m.StorePath != "" {
			var err error
			defs, err = store.Open(m.StorePath)
			if err != nil {
				return nil, err
			}
		}

		var files *fs.DefinitionFiles
		if m.ClosureDir != "" {
			files = fs.NewDefinitionFiles(m.ClosureDir)
		}

		return &Backends{
			Sources: source.NewFactory(catalog, hasher, defs, files),
			Store:   defs,
		}, nil
	}
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

	env, err := graft.Dep[*environment.Environment](ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := graft.Dep[*source.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
		Environment:  env,
		Catalog:      catalog,
	}, nil
}
