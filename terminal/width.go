package terminal

import (
	"github.com/mattn/go-runewidth"
)

// cellWidth measures without East Asian ambiguous widening,
// so Cyrillic stays one cell regardless of locale
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns the number of cells r occupies on every Surface
func RuneWidth(r rune) int {
	return cellWidth.RuneWidth(r)
}
