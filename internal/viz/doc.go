// Package viz renders Riemann surfaces in the terminal.
//
// The surface package only produces point grids; everything about how they
// look lives here:
//
//   - [Figure]: a built surface plus its title and axis labels
//   - [Renderer]: anything that can draw a figure to a writer
//   - [TerminalRenderer]: a static Braille frame styled with lipgloss
//   - [Viewer]: an interactive Bubble Tea program with camera controls
//   - [PlotProfile]: the helical height of every sheet along one ring
//
// # Key Bindings
//
//	←/→ h/l  - Rotate azimuth
//	↑/↓ k/j  - Change elevation
//	+/-      - Zoom
//	w/a/s/d  - Pan
//	1..9     - Toggle sheet visibility (0 shows all)
//	T        - Cycle color themes
//	R        - Reset camera
//	?        - Show help overlay
//
// Sheets are drawn top first, then depth sorted, so the nearest sheet wins
// the color of a shared cell.
package viz
