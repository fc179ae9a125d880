package scene

import (
	"github.com/lixenwraith/snowtree/terminal"
)

type cell struct {
	r  rune
	fg terminal.RGB
}

type pos struct{ row, col int }

// gridSurface records the visible picture the way a terminal would hold it
type gridSurface struct {
	cols, rows int
	cells      map[pos]cell

	cursorVisible bool
	resets        int
	clears        int
	flushes       int
	finis         int

	onFlush func(n int)
}

func newGridSurface(cols, rows int) *gridSurface {
	return &gridSurface{
		cols:          cols,
		rows:          rows,
		cells:         map[pos]cell{},
		cursorVisible: true,
	}
}

func (g *gridSurface) Clear() {
	g.cells = map[pos]cell{}
	g.clears++
}

func (g *gridSurface) SetCell(row, col int, r rune, fg terminal.RGB) {
	if r == ' ' {
		delete(g.cells, pos{row, col})
		return
	}
	g.cells[pos{row, col}] = cell{r, fg}
}

func (g *gridSurface) SetText(row, col int, s string, fg terminal.RGB) {
	for _, r := range s {
		g.SetCell(row, col, r, fg)
		col++
	}
}

func (g *gridSurface) HideCursor()          { g.cursorVisible = false }
func (g *gridSurface) ShowCursor()          { g.cursorVisible = true }
func (g *gridSurface) Reset()               { g.resets++ }
func (g *gridSurface) Size() (int, int)     { return g.cols, g.rows }
func (g *gridSurface) Fini()                { g.finis++ }
func (g *gridSurface) at(row, col int) cell { return g.cells[pos{row, col}] }

func (g *gridSurface) Flush() error {
	g.flushes++
	if g.onFlush != nil {
		g.onFlush(g.flushes)
	}
	return nil
}

func (g *gridSurface) snapshot() map[pos]cell {
	out := make(map[pos]cell, len(g.cells))
	for k, v := range g.cells {
		out[k] = v
	}
	return out
}
