// Package viz is the interactive terminal host for a free-fall drop.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: playback state and rendering of ruler, ball and velocity arrow
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Release / pause / resume
//	R     - Release again from the top
//	[ ]   - Step one frame back / forward
//	{ }   - Step ten frames back / forward
//	H     - Cycle initial height (1, 2, 5, 10 m)
//	M     - Cycle mass (display only)
//	F     - Show / hide formulas
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// The model is never mutated by the host: every redraw asks the kinematics
// model for the sample at the playhead.
package viz
