package app

import (
	"context"

	"go.trai.ch/dynctl/internal/adapters/source" //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/build"
	"go.trai.ch/dynctl/internal/core/domain"
)

// SystemController is the name of the built-in controller.
const SystemController = "system"

// NewSystemController returns the built-in controller every catalog starts
// with. Manifests bind its actions like any other controller.
func NewSystemController() *source.Controller {
	ctrl := source.NewController(SystemController)
	ctrl.Handle("ping", func(_ context.Context, _ domain.Params) (any, error) {
		return "pong", nil
	})
	ctrl.Handle("version", func(_ context.Context, _ domain.Params) (any, error) {
		return build.Version, nil
	})
	return ctrl
}
