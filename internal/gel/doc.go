// Package gel implements the electrophoresis simulation core.
//
// The package defines the in-memory model for a single gel run:
//
//   - [Fragment]: one DNA band migrating down the gel
//   - [Registry]: the loaded set of fragments, grouped into lanes
//   - [Step]: the per-frame motion update
//   - [Controller]: the Idle/Running/Paused run state machine
//
// # Example
//
//	reg := gel.NewRegistry(15)
//	ctrl := gel.NewController(reg, gel.DefaultParams())
//	ctrl.LoadLanes(lanes)
//	_ = ctrl.Start()
//	ctrl.Advance(dt)
//
// # Thread Safety
//
// Controller and Registry are NOT thread-safe. They are designed to be
// driven from a single event loop; all mutation happens through the
// controller's callback chain.
package gel
