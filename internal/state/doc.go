// Package state shares the splash controller's status with goroutines outside
// the Bubble Tea update loop.
//
// # Overview
//
// The splash controller lives on the UI loop and is not safe for concurrent
// use. Callers such as the bridge answer isAnimating from arbitrary goroutines,
// so the controller publishes a copy of its status to a Store after every
// transition and readers take snapshots.
//
//	UI loop (writer):              Bridge callers (readers):
//	┌──────────────────┐          ┌────────────────────┐
//	│ controller.Show()│          │                    │
//	│      ↓           │          │                    │
//	│ store.Update()   │─────────→│ store.Snapshot()   │
//	│                  │ (RWMutex)│      ↓             │
//	│                  │          │ snap.IsAnimating() │
//	└──────────────────┘          └────────────────────┘
//
// # Concurrency Model
//
//   - Update(): write lock, single writer (the UI loop)
//   - Snapshot(): read lock, any number of readers
//
// splash.Status holds only values, so copying it under the lock is enough to
// hand out an independent snapshot.
//
// # Testing Considerations
//
// The zero Store is ready to use. Snapshot() on a store that never received
// an update returns a zero Snapshot whose IsAnimating() is false.
package state
