// @lixen: #focus{sys[term,output]}
package terminal

import (
	"io"
	"os"
)

// Surface is the drawing primitive the animation paints through
// Rows and columns are 1-based; writes outside the visible area are the caller's concern
type Surface interface {
	// Clear erases the screen and homes the cursor
	Clear()

	// SetCell moves to (row, col) and writes one glyph in fg, resetting style afterwards
	// A space is written without color
	SetCell(row, col int, r rune, fg RGB)

	// SetText writes a run of glyphs starting at (row, col) in fg
	SetText(row, col int, s string, fg RGB)

	// HideCursor and ShowCursor toggle cursor visibility
	HideCursor()
	ShowCursor()

	// Reset restores default styling
	Reset()

	// Size returns current (cols, rows)
	Size() (cols, rows int)

	// Flush pushes pending output to the terminal
	Flush() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort
	resetTerminalMode()
}
