// Package art holds the immutable picture layers: the tree and the banner below it.
package art

import (
	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/terminal"
)

const (
	// SocketGlyph marks a light position inside the tree
	SocketGlyph = 'o'
	// TrunkGlyph is drawn brown on the trunk row
	TrunkGlyph = '|'

	blank = ' '
)

var treeRows = []string{
	"      /\\",
	"     /  \\",
	"    /  o \\",
	"    /    \\",
	"   / o   o\\",
	"  /        \\",
	"  /    o   \\",
	" /          \\",
	"/  o       o \\",
	"      | |",
}

// Cell is an art-local (row, col) pair, 0-based
type Cell struct {
	Row, Col int
}

// Art is an immutable glyph grid with a designated trunk row
type Art struct {
	rows    [][]rune
	width   int
	trunk   int
	sockets []Cell
}

// NewTree returns the tree layer
func NewTree() *Art {
	return New(treeRows)
}

// New builds an art layer from text rows; the last row is the trunk
func New(lines []string) *Art {
	a := &Art{
		rows:  make([][]rune, len(lines)),
		trunk: len(lines) - 1,
	}
	for i, line := range lines {
		a.rows[i] = []rune(line)
		if len(a.rows[i]) > a.width {
			a.width = len(a.rows[i])
		}
		for j, r := range a.rows[i] {
			if r == SocketGlyph {
				a.sockets = append(a.sockets, Cell{Row: i, Col: j})
			}
		}
	}
	return a
}

// Width is the longest row length
func (a *Art) Width() int { return a.width }

// Height is the row count
func (a *Art) Height() int { return len(a.rows) }

// GlyphAt returns the glyph at art-local coordinates
// ok is false outside the grid and on blank cells
func (a *Art) GlyphAt(row, col int) (rune, bool) {
	if row < 0 || row >= len(a.rows) {
		return 0, false
	}
	line := a.rows[row]
	if col < 0 || col >= len(line) {
		return 0, false
	}
	r := line[col]
	if r == blank {
		return 0, false
	}
	return r, true
}

// IsTrunk reports whether r on row is part of the trunk
func (a *Art) IsTrunk(row int, r rune) bool {
	return row == a.trunk && r == TrunkGlyph
}

// LightSockets returns socket positions in row-major order
// Index i corresponds to light i in the scene
func (a *Art) LightSockets() []Cell {
	out := make([]Cell, len(a.sockets))
	copy(out, a.sockets)
	return out
}

// ColorAt returns the color a non-blank glyph is painted with
func (a *Art) ColorAt(row int, r rune) terminal.RGB {
	if a.IsTrunk(row, r) {
		return constants.TrunkColor
	}
	return constants.TreeColor
}
