// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xcache/internal/adapters/cas"
	_ "go.trai.ch/xcache/internal/adapters/config"
	_ "go.trai.ch/xcache/internal/adapters/fs"
	_ "go.trai.ch/xcache/internal/adapters/logger"
	_ "go.trai.ch/xcache/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/xcache/internal/app"
	_ "go.trai.ch/xcache/internal/engine/contenthash"
)
