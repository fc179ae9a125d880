// @lixen: #focus{render[compose,loop]}
// Package scene composites the tree, its lights and the snow onto a terminal Surface.
//
// There is no off-screen frame buffer. Each flake erases the cell it painted last frame
// by asking the static layers what belongs there, then paints its new cell if no layer
// claims it. Lights repaint their sockets every frame.
package scene

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/snowtree/art"
	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/light"
	"github.com/lixenwraith/snowtree/snow"
	"github.com/lixenwraith/snowtree/terminal"
)

// Bell is notified when a light ignites
type Bell interface {
	Ring(paletteIndex int)
}

// Options configures an Animation
type Options struct {
	// Seed for the root generator; 0 seeds randomly
	Seed uint64

	// Banner text below the tree; empty uses the default greeting
	Banner string

	// Bell is optional
	Bell Bell
}

// Animation owns every mutable piece of the display and runs on a single goroutine
type Animation struct {
	surface terminal.Surface

	tree    *art.Art
	banner  *art.Banner
	sockets []art.Cell

	lights []*light.Cycle
	flakes []*snow.Particle

	layout     Layout
	cols, rows int
	measured   bool

	dt       float64
	interval time.Duration

	rng  *rand.Rand
	bell Bell
}

// New builds the scene; nothing is drawn until the first Frame
func New(surface terminal.Surface, opts Options) *Animation {
	var rng *rand.Rand
	if opts.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	text := opts.Banner
	if text == "" {
		text = constants.BannerText
	}

	tree := art.NewTree()
	a := &Animation{
		surface:  surface,
		tree:     tree,
		banner:   art.NewBanner(text, tree),
		sockets:  tree.LightSockets(),
		dt:       constants.FrameDelta,
		interval: constants.FrameInterval,
		rng:      rng,
		bell:     opts.Bell,
	}

	a.lights = make([]*light.Cycle, len(a.sockets))
	for i := range a.lights {
		a.lights[i] = light.New(constants.LightPalette, a.child())
	}

	return a
}

// child derives an independent generator from the root
func (a *Animation) child() *rand.Rand {
	return rand.New(rand.NewPCG(a.rng.Uint64(), a.rng.Uint64()))
}

// blockHeight spans the tree, the gap row and the banner row
func (a *Animation) blockHeight() int {
	return a.banner.Offset() + 1
}

// Layout returns the current tree origin
func (a *Animation) Layout() Layout { return a.layout }

// Size returns the terminal size the scene was last laid out for
func (a *Animation) Size() (int, int) { return a.cols, a.rows }

// Lights returns the light cycles, index-aligned with the tree's sockets
func (a *Animation) Lights() []*light.Cycle { return a.lights }

// Flakes returns the current snow population
func (a *Animation) Flakes() []*snow.Particle { return a.flakes }

// resize recenters, repaints the static layers and regrows the snow for a new size
func (a *Animation) resize(cols, rows int) {
	a.cols, a.rows = cols, rows
	a.measured = true
	a.layout = Center(cols, rows, a.tree.Width(), a.blockHeight())
	a.flakes = snow.NewField(cols, rows, a.child())

	log.Printf("scene: %dx%d origin=(%d,%d) flakes=%d", cols, rows, a.layout.BaseRow, a.layout.BaseCol, len(a.flakes))

	a.drawStatic()
}

func (a *Animation) inBounds(row, col int) bool {
	return row >= 1 && row <= a.rows && col >= 1 && col <= a.cols
}

// drawStatic clears the screen and paints the tree and banner at the current origin
func (a *Animation) drawStatic() {
	a.surface.Clear()

	for i := 0; i < a.tree.Height(); i++ {
		row := a.layout.BaseRow + i
		for j := 0; j < a.tree.Width(); j++ {
			r, ok := a.tree.GlyphAt(i, j)
			col := a.layout.BaseCol + j
			if !ok || !a.inBounds(row, col) {
				continue
			}
			a.surface.SetCell(row, col, r, a.tree.ColorAt(i, r))
		}
	}

	bRow, bCol := a.banner.Position(a.layout.BaseRow, a.layout.BaseCol)
	if a.inBounds(bRow, bCol) && a.inBounds(bRow, bCol+a.banner.Width()-1) {
		a.surface.SetText(bRow, bCol, a.banner.Text(), a.banner.Color())
		return
	}

	// Clipped by a narrow terminal
	for col := bCol; col < bCol+a.banner.Width(); col++ {
		r, ok := a.banner.GlyphAt(bRow, col, a.layout.BaseRow, a.layout.BaseCol)
		if ok && a.inBounds(bRow, col) {
			a.surface.SetCell(bRow, col, r, a.banner.Color())
		}
	}
}

// Occupied reports whether a static layer owns the absolute cell
func (a *Animation) Occupied(row, col int) bool {
	if _, ok := a.tree.GlyphAt(row-a.layout.BaseRow, col-a.layout.BaseCol); ok {
		return true
	}
	return a.banner.Covers(row, col, a.layout.BaseRow, a.layout.BaseCol)
}

// Background returns the static glyph and color at an absolute cell
// ok is false where only the blank background belongs
func (a *Animation) Background(row, col int) (rune, terminal.RGB, bool) {
	lr, lc := row-a.layout.BaseRow, col-a.layout.BaseCol
	if r, ok := a.tree.GlyphAt(lr, lc); ok {
		return r, a.tree.ColorAt(lr, r), true
	}
	if r, ok := a.banner.GlyphAt(row, col, a.layout.BaseRow, a.layout.BaseCol); ok {
		return r, a.banner.Color(), true
	}
	return 0, terminal.RGB{}, false
}

// restoreCell repaints whatever the static layers hold at a cell
func (a *Animation) restoreCell(row, col int) {
	if r, fg, ok := a.Background(row, col); ok {
		a.surface.SetCell(row, col, r, fg)
		return
	}
	if a.banner.Covers(row, col, a.layout.BaseRow, a.layout.BaseCol) {
		// Right half of a wide banner rune; repainting the rune itself would shift it
		return
	}
	a.surface.SetCell(row, col, ' ', terminal.RGB{})
}

func (a *Animation) updateSnow() {
	for _, f := range a.flakes {
		if prev, ok := f.PrevRow(); ok {
			_, col := f.Position()
			if a.inBounds(prev, col) {
				a.restoreCell(prev, col)
			}
		}

		f.Advance(a.dt, a.rows, a.cols)
		row, col := f.Position()

		if a.inBounds(row, col) && !a.Occupied(row, col) {
			a.surface.SetCell(row, col, f.Glyph(), constants.SnowColor)
			f.SetPrevRow(row)
		} else {
			f.SetPrevRow(0)
		}
	}
}

func (a *Animation) updateLights() {
	for i, l := range a.lights {
		if l.Advance(a.dt) && l.Phase() == light.PhaseFadeIn && a.bell != nil {
			a.bell.Ring(l.PaletteIndex())
		}

		row := a.layout.BaseRow + a.sockets[i].Row
		col := a.layout.BaseCol + a.sockets[i].Col
		if a.inBounds(row, col) {
			a.surface.SetCell(row, col, art.SocketGlyph, l.Color())
		}
	}
}

// Frame runs one tick: resize check, snow, lights, flush
func (a *Animation) Frame() error {
	if cols, rows := a.surface.Size(); !a.measured || cols != a.cols || rows != a.rows {
		a.resize(cols, rows)
	}

	a.updateSnow()
	a.updateLights()

	if err := a.surface.Flush(); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

// Run draws frames at the fixed rate until ctx is done
// The remaining frame budget is slept after each frame; late frames are not caught up
// Cancellation is observed between frames and restores styling and the cursor
func (a *Animation) Run(ctx context.Context) error {
	a.surface.HideCursor()
	defer a.restore()

	timer := time.NewTimer(a.interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		start := time.Now()
		if err := a.Frame(); err != nil {
			return err
		}

		timer.Reset(max(a.interval-time.Since(start), 0))
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}

func (a *Animation) restore() {
	a.surface.Reset()
	a.surface.ShowCursor()
	if err := a.surface.Flush(); err != nil {
		log.Printf("scene: restore flush: %v", err)
	}
}
