// Package environment provides the process-wide development mode flag.
package environment

import (
	"os"
	"sync/atomic"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
)

// Variable names the environment variable that selects the mode.
const Variable = "DYNCTL_ENV"

var _ ports.ModeProvider = (*Environment)(nil)

// Environment holds the current mode. It is safe for concurrent use and may be
// switched at runtime; resolvers read it on every access.
type Environment struct {
	mode   atomic.Uint32
	pinned bool
}

// New returns an Environment set to mode.
func New(mode domain.Mode) *Environment {
	e := &Environment{}
	e.Set(mode)
	return e
}

// FromEnv reads the mode from DYNCTL_ENV, falling back to fallback when the
// variable is unset or empty. A mode taken from the variable is pinned.
func FromEnv(fallback domain.Mode) (*Environment, error) {
	v, ok := os.LookupEnv(Variable)
	if !ok || v == "" {
		return New(fallback), nil
	}
	mode, err := domain.ParseMode(v)
	if err != nil {
		return nil, err
	}
	e := New(mode)
	e.pinned = true
	return e, nil
}

// Mode returns the current mode.
func (e *Environment) Mode() domain.Mode {
	return domain.Mode(e.mode.Load())
}

// Set switches the mode.
func (e *Environment) Set(mode domain.Mode) {
	e.mode.Store(uint32(mode))
}

// Pinned reports whether the mode was taken from DYNCTL_ENV, in which case
// configuration files should not override it.
func (e *Environment) Pinned() bool {
	return e.pinned
}

// IsDevelopmentMode implements ports.ModeProvider.
func (e *Environment) IsDevelopmentMode() bool {
	return e.Mode().IsDevelopment()
}
