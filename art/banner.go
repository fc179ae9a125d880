package art

import (
	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/terminal"
)

// Banner is a single line of text anchored below a tree
type Banner struct {
	text  []rune
	cols  []int // display column offset of each rune
	width int
	under *Art
}

// NewBanner places text one blank row below tree, centered on its width
func NewBanner(text string, tree *Art) *Banner {
	b := &Banner{
		text:  []rune(text),
		under: tree,
	}
	b.cols = make([]int, len(b.text))
	for i, r := range b.text {
		b.cols[i] = b.width
		b.width += terminal.RuneWidth(r)
	}
	return b
}

// Text returns the banner text
func (b *Banner) Text() string { return string(b.text) }

// Width is the display width in cells
func (b *Banner) Width() int { return b.width }

// Offset is the banner's row distance from the tree's top row
func (b *Banner) Offset() int { return b.under.Height() + 1 }

// Position returns the absolute (row, col) of the first banner cell for a tree origin
func (b *Banner) Position(baseRow, baseCol int) (int, int) {
	return baseRow + b.Offset(), baseCol + max(0, (b.under.Width()-b.width)/2)
}

// Covers reports whether the banner spans an absolute cell, including the
// trailing half of wide runes
func (b *Banner) Covers(row, col, baseRow, baseCol int) bool {
	bRow, bCol := b.Position(baseRow, baseCol)
	return row == bRow && col >= bCol && col < bCol+b.width
}

// GlyphAt returns the banner glyph at an absolute cell for a tree origin
func (b *Banner) GlyphAt(row, col, baseRow, baseCol int) (rune, bool) {
	bRow, bCol := b.Position(baseRow, baseCol)
	if row != bRow {
		return 0, false
	}
	x := col - bCol
	if x < 0 || x >= b.width {
		return 0, false
	}
	for i, c := range b.cols {
		if c == x {
			return b.text[i], true
		}
	}
	// Trailing half of a wide rune
	return 0, false
}

// Color is the banner foreground
func (b *Banner) Color() terminal.RGB {
	return constants.BannerColor
}
