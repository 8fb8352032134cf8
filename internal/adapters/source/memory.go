package source

import (
	"context"
	"fmt"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ClosureSource = (*ControllerSource)(nil)
	_ ports.ClosureSource = (*MixinSource)(nil)
)

// ControllerSource resolves an action from a controller in the Catalog.
// The controller is looked up on every call, so a controller registered or
// replaced after construction is picked up.
type ControllerSource struct {
	catalog    *Catalog
	controller string
	action     domain.ActionName
	hasher     ports.Hasher
}

// NewControllerSource creates a ControllerSource for controller/action.
func NewControllerSource(catalog *Catalog, controller string, action domain.ActionName, hasher ports.Hasher) *ControllerSource {
	return &ControllerSource{catalog: catalog, controller: controller, action: action, hasher: hasher}
}

// Resolve implements ports.ClosureSource.
func (s *ControllerSource) Resolve(_ context.Context) (*domain.Closure, error) {
	ctrl, ok := s.catalog.Controller(s.controller)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrClosureNotFound, "controller not registered"),
			"controller", s.controller), "action", s.action.String())
	}
	return resolveHandler(ctrl.Actions, "controller:"+s.controller, s.action, s.hasher)
}

// ActionName implements ports.ClosureSource.
func (s *ControllerSource) ActionName() domain.ActionName {
	return s.action
}

// MixinSource resolves an action from a mixin in the Catalog.
type MixinSource struct {
	catalog *Catalog
	mixin   string
	action  domain.ActionName
	hasher  ports.Hasher
}

// NewMixinSource creates a MixinSource for mixin/action.
func NewMixinSource(catalog *Catalog, mixin string, action domain.ActionName, hasher ports.Hasher) *MixinSource {
	return &MixinSource{catalog: catalog, mixin: mixin, action: action, hasher: hasher}
}

// Resolve implements ports.ClosureSource.
func (s *MixinSource) Resolve(_ context.Context) (*domain.Closure, error) {
	m, ok := s.catalog.Mixin(s.mixin)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrClosureNotFound, "mixin not registered"),
			"mixin", s.mixin), "action", s.action.String())
	}
	return resolveHandler(m.Actions, "mixin:"+s.mixin, s.action, s.hasher)
}

// ActionName implements ports.ClosureSource.
func (s *MixinSource) ActionName() domain.ActionName {
	return s.action
}

func resolveHandler(set *Actions, origin string, action domain.ActionName, hasher ports.Hasher) (*domain.Closure, error) {
	fn, ok := set.Lookup(action)
	if !ok || fn == nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrClosureNotFound, "action not defined"),
			"origin", origin), "action", action.String())
	}

	// Go handlers carry no source text; the handler identity stands in for it
	// so that replacing a handler changes the revision.
	return &domain.Closure{
		Action:   action,
		Origin:   origin,
		Revision: hasher.Fingerprint(fmt.Appendf(nil, "%s/%s/%p", origin, action, fn)),
		Fn:       fn,
	}, nil
}
