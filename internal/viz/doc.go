// Package viz provides the terminal front end for modviz.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: Bubble Tea model wrapping a [scene.Scene]
//   - [Canvas]: Braille-based pixel canvas the rings are drawn on
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Tab/↑/↓ - Move between operand, modulus and generator
//	0-9     - Edit the focused field
//	Enter   - Commit the focused field
//	G       - Generate (commits pending edits first)
//	M       - Toggle reduction / cycle mode
//	T       - Cycle color themes
//	Q       - Quit
package viz
