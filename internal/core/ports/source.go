package ports

import (
	"context"

	"go.trai.ch/dynctl/internal/core/domain"
)

// ClosureSource resolves the closure for a single action from a backing source
// such as a controller, a mixin, a definition store or a file.
//
// The action and any backing-store parameters are bound at construction.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type ClosureSource interface {
	// Resolve fetches the closure. It may do real work on every call and returns
	// an equivalent, not necessarily identical, closure each time.
	// A missing closure is reported with an error matching domain.ErrClosureNotFound.
	Resolve(ctx context.Context) (*domain.Closure, error)

	// ActionName returns the action the source is bound to.
	ActionName() domain.ActionName
}
