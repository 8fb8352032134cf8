// Package resolver implements the caching closure resolver.
package resolver

import (
	"context"
	"sync"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
)

// CachingResolver memoizes the closure of a single ClosureSource.
//
// The cached closure is trusted only outside development mode. In development
// mode every Get resolves again, but the fresh closure still replaces the
// cached one, so it is what a later non-development Get returns.
type CachingResolver struct {
	source ports.ClosureSource
	mode   ports.ModeProvider
	log    ports.Logger

	// mu guards the mode check, the cache read and the resolve-and-store as one
	// critical section. Resolutions of a single action are serialized.
	mu      sync.Mutex
	closure *domain.Closure
}

// New creates a CachingResolver for source. Nothing is resolved until the
// first call to Get.
func New(source ports.ClosureSource, mode ports.ModeProvider, log ports.Logger) *CachingResolver {
	return &CachingResolver{
		source: source,
		mode:   mode,
		log:    log.Named("resolver"),
	}
}

// Get returns the closure for the bound action.
//
// Errors from the source are returned as is and leave the cache untouched, so
// the next call resolves again.
func (r *CachingResolver) Get(ctx context.Context) (*domain.Closure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bypass := r.mode.IsDevelopmentMode()
	if !bypass && r.closure != nil {
		return r.closure, nil
	}

	action := r.source.ActionName()
	r.log.Debug("resolving closure", "action", action.String(), "bypass", bypass)

	closure, err := r.source.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	r.closure = closure
	return closure, nil
}

// ActionName returns the action this resolver is bound to.
func (r *CachingResolver) ActionName() domain.ActionName {
	return r.source.ActionName()
}
