package app

import (
	"go.trai.ch/dynctl/internal/adapters/environment" //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/adapters/source"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dynctl/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Environment  *environment.Environment
	Catalog      *source.Catalog
}
