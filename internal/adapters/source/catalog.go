// Package source implements the closure sources a binding can resolve from:
// in-memory controllers and mixins, persisted definitions and definition files.
package source

import (
	"sync"

	"go.trai.ch/dynctl/internal/core/domain"
)

// Actions is a named set of Go handlers keyed by action name.
type Actions struct {
	name string

	mu       sync.RWMutex
	handlers map[string]domain.Handler
}

func newActions(name string) *Actions {
	return &Actions{name: name, handlers: make(map[string]domain.Handler)}
}

// Name returns the name of the set.
func (a *Actions) Name() string {
	return a.name
}

// Handle registers fn for action, replacing any previous handler.
func (a *Actions) Handle(action string, fn domain.Handler) *Actions {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers[action] = fn
	return a
}

// Lookup returns the handler registered for action.
func (a *Actions) Lookup(action domain.ActionName) (domain.Handler, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	fn, ok := a.handlers[action.String()]
	return fn, ok
}

// Controller is an in-memory controller object.
type Controller struct {
	*Actions
}

// NewController creates an empty controller.
func NewController(name string) *Controller {
	return &Controller{Actions: newActions(name)}
}

// Mixin is a set of actions shared by several controllers.
type Mixin struct {
	*Actions
}

// NewMixin creates an empty mixin.
func NewMixin(name string) *Mixin {
	return &Mixin{Actions: newActions(name)}
}

// Catalog holds the in-memory controllers and mixins the host registered.
type Catalog struct {
	mu          sync.RWMutex
	controllers map[string]*Controller
	mixins      map[string]*Mixin
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		controllers: make(map[string]*Controller),
		mixins:      make(map[string]*Mixin),
	}
}

// AddController registers c under its name, replacing any previous one.
func (c *Catalog) AddController(ctrl *Controller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controllers[ctrl.Name()] = ctrl
}

// AddMixin registers m under its name, replacing any previous one.
func (c *Catalog) AddMixin(m *Mixin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mixins[m.Name()] = m
}

// Controller returns the controller registered under name.
func (c *Catalog) Controller(name string) (*Controller, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ctrl, ok := c.controllers[name]
	return ctrl, ok
}

// Mixin returns the mixin registered under name.
func (c *Catalog) Mixin(name string) (*Mixin, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.mixins[name]
	return m, ok
}
