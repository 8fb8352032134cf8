package ports

import "go.trai.ch/dynctl/internal/core/domain"

// DefinitionStore defines the interface for persisting closure definitions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DefinitionStore interface {
	// Get retrieves the definition for the given action.
	// Returns nil, nil if not found.
	Get(action string) (*domain.Definition, error)

	// Put stores the definition.
	Put(def domain.Definition) error
}
