package domain

import (
	"context"
	"time"
)

// Params carries request parameters handed to a Handler by the host.
type Params map[string]string

// Handler is the callable part of a closure. Dispatching it is up to the host.
type Handler func(ctx context.Context, params Params) (any, error)

// Closure is a resolved unit of controller logic for one action.
type Closure struct {
	// Action is the action the closure was resolved for.
	Action ActionName
	// Origin names the backing source, e.g. "controller:book" or "store".
	Origin string
	// Code is the definition text for text-backed sources. Empty for Go handlers.
	Code string
	// Revision fingerprints the definition so callers can tell edits apart.
	Revision string
	// Fn is nil for definitions that only carry source text.
	Fn Handler
}

// Definition is a closure definition as persisted by a DefinitionStore.
type Definition struct {
	Action    ActionName `json:"action"`
	Code      string     `json:"code"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
}
