// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dynctl/internal/adapters/config"
	_ "go.trai.ch/dynctl/internal/adapters/environment"
	_ "go.trai.ch/dynctl/internal/adapters/fs"
	_ "go.trai.ch/dynctl/internal/adapters/logger"
	_ "go.trai.ch/dynctl/internal/adapters/source"
	// Register app nodes.
	_ "go.trai.ch/dynctl/internal/app"
)
