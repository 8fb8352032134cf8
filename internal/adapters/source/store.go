package source

import (
	"context"
	"errors"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClosureSource = (*StoreSource)(nil)

// StoreSource resolves an action from persisted definitions.
type StoreSource struct {
	store  ports.DefinitionStore
	action domain.ActionName
	hasher ports.Hasher
}

// NewStoreSource creates a StoreSource for action.
func NewStoreSource(store ports.DefinitionStore, action domain.ActionName, hasher ports.Hasher) *StoreSource {
	return &StoreSource{store: store, action: action, hasher: hasher}
}

// Resolve implements ports.ClosureSource.
// A store failure is reported as domain.ErrSourceUnavailable.
func (s *StoreSource) Resolve(_ context.Context) (*domain.Closure, error) {
	def, err := s.store.Get(s.action.String())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSourceUnavailable, err), "failed to read definition"),
			"action", s.action.String())
	}
	if def == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrClosureNotFound, "no stored definition"), "action", s.action.String())
	}

	return &domain.Closure{
		Action:   s.action,
		Origin:   "store",
		Code:     def.Code,
		Revision: s.hasher.Fingerprint([]byte(def.Code)),
	}, nil
}

// ActionName implements ports.ClosureSource.
func (s *StoreSource) ActionName() domain.ActionName {
	return s.action
}
