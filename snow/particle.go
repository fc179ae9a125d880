// Package snow models falling flakes that recycle to the top when they leave the screen.
package snow

import (
	"math/rand/v2"

	"github.com/lixenwraith/snowtree/constants"
)

// Particle is one flake; position is continuous vertically, integral horizontally
type Particle struct {
	col   int
	y     float64
	speed float64
	glyph rune

	prevRow int // 0 = nothing painted yet

	rng *rand.Rand
}

// New places a flake at a random cell of a cols x rows area
func New(cols, rows int, rng *rand.Rand) *Particle {
	p := &Particle{rng: rng}
	p.respawn(cols)
	p.y = 1 + rng.Float64()*float64(max(rows-1, 0))
	return p
}

func (p *Particle) respawn(cols int) {
	p.col = 1 + p.rng.IntN(max(cols, 1))
	p.speed = constants.SnowSpeedMin + p.rng.Float64()*(constants.SnowSpeedMax-constants.SnowSpeedMin)
	p.glyph = constants.SnowGlyphs[p.rng.IntN(len(constants.SnowGlyphs))]
}

// Advance moves the flake down by speed*dt
// Past the bottom row it restarts at row 1 with a fresh column, speed and glyph
func (p *Particle) Advance(dt float64, rows, cols int) {
	p.y += p.speed * dt
	if p.y > float64(rows) {
		p.y = 1
		p.respawn(cols)
	}
}

// Position returns the integer (row, col) cell
func (p *Particle) Position() (int, int) {
	return int(p.y), p.col
}

// Y returns the fractional row
func (p *Particle) Y() float64 { return p.y }

// Speed returns fall speed in rows per second
func (p *Particle) Speed() float64 { return p.speed }

// Glyph returns the flake shape
func (p *Particle) Glyph() rune { return p.glyph }

// PrevRow returns the row painted on the previous frame
func (p *Particle) PrevRow() (int, bool) {
	return p.prevRow, p.prevRow > 0
}

// SetPrevRow records the row just painted (or attempted)
func (p *Particle) SetPrevRow(row int) { p.prevRow = row }
