// Package viz provides the terminal UI for the gel simulator.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - menu state for choosing a sample preset
//   - [Model]: the live gel view with a braille [Canvas]
//   - stain-inspired color themes
//
// # Key Bindings
//
//	Space - Start/Pause the run
//	R     - Reset the gel
//	L     - Load samples
//	Up/Dn - Adjust voltage
//	T     - Cycle themes
//	?     - Show help overlay
//
// The view drives the simulation through two sched.Loop instances: a
// per-frame loop feeding measured deltas to the motion update, and a
// once-per-second loop for the elapsed timer. Leaving the Running phase
// stops both loops, which invalidates any callback still in flight.
package viz
