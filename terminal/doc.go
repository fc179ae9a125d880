// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for cell-addressed drawing.
//
// Features:
//   - True color (24-bit) and 256-color foreground support
//   - Direct cursor-addressed writes, no retained frame buffer
//   - Terminal size query with 80x24 fallback
//   - tcell-backed Surface for alternate-screen rendering and tests
//   - Clean terminal restoration on exit/panic
//
// Coordinates at the Surface boundary are 1-based (row, col), matching CUP.
package terminal
