// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/podlink/internal/adapters/cas"
	_ "go.trai.ch/podlink/internal/adapters/config"
	_ "go.trai.ch/podlink/internal/adapters/fs"
	_ "go.trai.ch/podlink/internal/adapters/logger"
	_ "go.trai.ch/podlink/internal/adapters/telemetry"
	_ "go.trai.ch/podlink/internal/adapters/xcodeproj"
	// Register app and engine nodes.
	_ "go.trai.ch/podlink/internal/app"
	_ "go.trai.ch/podlink/internal/engine/integrator"
)
