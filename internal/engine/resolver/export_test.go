package resolver

import "go.trai.ch/dynctl/internal/core/domain"

// Cached returns the currently stored closure without resolving.
// This is exported for testing purposes only.
func (r *CachingResolver) Cached() *domain.Closure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closure
}
