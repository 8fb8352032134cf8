// Package app implements the application layer for dynctl.
package app

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/dynctl/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Environment is the mode provider the App configures from the manifest.
type Environment interface {
	ports.ModeProvider
	Mode() domain.Mode
	Set(mode domain.Mode)
	// Pinned reports whether the mode was fixed by the process environment.
	Pinned() bool
}

// SourceFactory builds the closure source a binding resolves from.
type SourceFactory interface {
	New(binding domain.Binding) (ports.ClosureSource, error)
}

// Backends are the manifest-dependent collaborators of the App.
type Backends struct {
	Sources SourceFactory
	// Store may be nil when the manifest configures no definition store.
	Store ports.DefinitionStore
}

// BackendOpener opens the backends a manifest describes.
type BackendOpener func(m *domain.Manifest) (*Backends, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	env          Environment
	log          ports.Logger
	logger       ports.Logger
	open         BackendOpener

	mu        sync.RWMutex
	store     ports.DefinitionStore
	resolvers map[string]*resolver.CachingResolver
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, env Environment, logger ports.Logger, open BackendOpener) *App {
	return &App{
		configLoader: loader,
		env:          env,
		log:          logger,
		logger:       logger.Named("app"),
		open:         open,
		resolvers:    make(map[string]*resolver.CachingResolver),
	}
}

// Load reads the manifest at path and configures the App from it.
func (a *App) Load(path string) error {
	m, err := a.configLoader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.Configure(m)
}

// Configure replaces the bindings of the App with those of m. One resolver is
// created per binding; nothing is resolved until it is asked for. On error the
// previous configuration is kept.
func (a *App) Configure(m *domain.Manifest) error {
	var mode *domain.Mode
	if m.Environment != "" && !a.env.Pinned() {
		parsed, err := domain.ParseMode(m.Environment)
		if err != nil {
			return err
		}
		mode = &parsed
	}

	backends, err := a.open(m)
	if err != nil {
		return zerr.Wrap(err, "failed to open backends")
	}

	resolvers := make(map[string]*resolver.CachingResolver, len(m.Bindings))
	for _, b := range m.Bindings {
		key := b.Key()
		if _, ok := resolvers[key]; ok {
			return zerr.With(zerr.Wrap(domain.ErrDuplicateBinding, "cannot configure binding"), "binding", key)
		}
		src, err := backends.Sources.New(b)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create source"), "binding", key)
		}
		resolvers[key] = resolver.New(src, a.env, a.log)
	}

	if mode != nil {
		a.env.Set(*mode)
	}

	a.mu.Lock()
	a.store = backends.Store
	a.resolvers = resolvers
	a.mu.Unlock()

	a.logger.Info("configured", "bindings", len(resolvers), "mode", a.env.Mode().String())
	return nil
}

// SetMode overrides the mode for the rest of the process.
func (a *App) SetMode(mode domain.Mode) {
	a.env.Set(mode)
}

// Mode returns the current mode.
func (a *App) Mode() domain.Mode {
	return a.env.Mode()
}

// Resolve returns the closures of the given actions of controller, in argument
// order. Actions are resolved concurrently; the first failure is returned.
func (a *App) Resolve(ctx context.Context, controller string, actions []string) ([]*domain.Closure, error) {
	if len(actions) == 0 {
		return nil, domain.ErrNoActionsSpecified
	}

	resolvers, err := a.lookup(controller, actions)
	if err != nil {
		return nil, err
	}

	closures := make([]*domain.Closure, len(resolvers))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range resolvers {
		g.Go(func() error {
			closure, err := r.Get(ctx)
			if err != nil {
				return err
			}
			closures[i] = closure
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return closures, nil
}

func (a *App) lookup(controller string, actions []string) ([]*resolver.CachingResolver, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	controller = strings.TrimSpace(controller)
	resolvers := make([]*resolver.CachingResolver, 0, len(actions))
	for _, raw := range actions {
		action, err := domain.NewActionName(raw)
		if err != nil {
			return nil, err
		}
		key := domain.BindingKey(controller, action.String())
		r, ok := a.resolvers[key]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrBindingNotFound, "unknown binding"), "binding", key)
		}
		resolvers = append(resolvers, r)
	}
	return resolvers, nil
}

// Define stores code as the definition of action.
func (a *App) Define(ctx context.Context, action, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := domain.NewActionName(action)
	if err != nil {
		return err
	}

	a.mu.RLock()
	store := a.store
	a.mu.RUnlock()
	if store == nil {
		return zerr.New("no definition store configured")
	}

	if err := store.Put(domain.Definition{Action: name, Code: code}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store definition"), "action", name.String())
	}
	a.logger.Info("defined", "action", name.String(), "bytes", len(code))
	return nil
}
