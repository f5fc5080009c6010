// Package app provides the orchestration layer for the curtain demo.
//
// # Overview
//
// This package wires together configuration, the splash controller, its
// terminal overlay, the bridge and the host UI. It is the composition root
// where all dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load the splash config (TOML or YAML) and apply per-run overrides
//  2. Resolve the host appearance before the program owns the terminal
//  3. Create the shared state.Store the controller publishes into
//  4. Build the overlay, controller and bridge, with the bridge as the
//     controller's event listener
//  5. Queue the launch splash, attach the bridge to the program
//  6. Start the simulated loader and run the TUI until exit
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> LoadConfig()          Read config, apply flags
//	       ├─────> build()               Store, bridge, overlay, controller, UI
//	       ├─────> bridge.Show()         Launch splash (queued)
//	       └─────> ui.Run()              Start TUI (blocks)
//	                 ├─> bridge.Attach() Forward queued calls
//	                 └─> StartLoader()   Progress, then AppLoaded
//
//	Loader goroutine:
//	┌─────────────────────────────────────────┐
//	│ StartLoader()                           │
//	│   every total/20:                       │
//	│     Program.Send(LoadProgressMsg)       │
//	│   then bridge.AppLoaded()               │
//	└─────────────────────────────────────────┘
//
// # Lifecycle
//
// Run blocks until the user quits or the context is cancelled. The loader
// and the bridge pump stop with the same context.
package app
