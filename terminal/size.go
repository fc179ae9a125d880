package terminal

import (
	"golang.org/x/term"
)

// Fallback dimensions when the terminal cannot be queried
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Size returns (cols, rows) for fd, falling back to 80x24
func Size(fd int) (int, int) {
	cols, rows, err := querySize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return DefaultCols, DefaultRows
	}
	return cols, rows
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
