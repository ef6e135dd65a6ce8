// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/droid/internal/adapters/config"
	_ "go.trai.ch/droid/internal/adapters/gradle"
	_ "go.trai.ch/droid/internal/adapters/linear"
	_ "go.trai.ch/droid/internal/adapters/logger"
	_ "go.trai.ch/droid/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/droid/internal/app"
)
