// Package light implements the per-socket brightness cycle of a tree light.
package light

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/terminal"
)

// Phase is a stage of the brightness cycle
type Phase uint8

const (
	PhaseOff Phase = iota
	PhaseFadeIn
	PhaseOn
	PhaseFadeOut
)

func (p Phase) String() string {
	switch p {
	case PhaseOff:
		return "off"
	case PhaseFadeIn:
		return "fade_in"
	case PhaseOn:
		return "on"
	case PhaseFadeOut:
		return "fade_out"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows p
func (p Phase) Next() Phase {
	return (p + 1) % 4
}

// Cycle is one light's state machine
// Phases run Off -> FadeIn -> On -> FadeOut -> Off; the palette advances on FadeOut -> Off
type Cycle struct {
	phase   Phase
	elapsed float64

	offDelay        float64
	fadeInDuration  float64
	onDuration      float64
	fadeOutDuration float64

	palette      []terminal.RGB
	paletteIndex int

	rng *rand.Rand
}

// New creates a light in Off with a random off-delay and starting color
func New(palette []terminal.RGB, rng *rand.Rand) *Cycle {
	c := &Cycle{
		phase:   PhaseOff,
		palette: append([]terminal.RGB(nil), palette...),
		rng:     rng,
	}
	if len(c.palette) == 0 {
		c.palette = []terminal.RGB{constants.SnowColor}
	}
	c.paletteIndex = rng.IntN(len(c.palette))
	c.offDelay = c.uniform(constants.OffDelayMin, constants.OffDelayMax)
	return c
}

func (c *Cycle) uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

func (c *Cycle) jitter(base float64) float64 {
	return base * c.uniform(constants.DurationJitterMin, constants.DurationJitterMax)
}

// Advance moves the cycle forward by dt seconds
// At most one transition happens per call; elapsed restarts at zero on transition
// Returns true if the phase changed
func (c *Cycle) Advance(dt float64) bool {
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt

	switch c.phase {
	case PhaseOff:
		if c.elapsed < c.offDelay {
			return false
		}
		c.fadeInDuration = c.jitter(constants.FadeInBase)
		c.onDuration = c.jitter(constants.OnBase)
		c.fadeOutDuration = c.jitter(constants.FadeOutBase)

	case PhaseFadeIn:
		if c.elapsed < c.fadeInDuration {
			return false
		}

	case PhaseOn:
		if c.elapsed < c.onDuration {
			return false
		}

	case PhaseFadeOut:
		if c.elapsed < c.fadeOutDuration {
			return false
		}
		c.paletteIndex = (c.paletteIndex + 1) % len(c.palette)
		c.offDelay = c.uniform(constants.OffDelayMin, constants.OffDelayMax)
	}

	c.phase = c.phase.Next()
	c.elapsed = 0
	return true
}

// Brightness returns the current factor in [MinBrightness, 1]
func (c *Cycle) Brightness() float64 {
	const floor = constants.MinBrightness

	switch c.phase {
	case PhaseFadeIn:
		p := progress(c.elapsed, c.fadeInDuration)
		return floor + (1-floor)*(1-math.Exp(-constants.FadeCurve*p))
	case PhaseOn:
		return 1.0
	case PhaseFadeOut:
		p := progress(c.elapsed, c.fadeOutDuration)
		return floor + (1-floor)*math.Exp(-constants.FadeCurve*p)
	default:
		return floor
	}
}

func progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Min(1, elapsed/duration)
}

// Color returns the base palette color dimmed by brightness with a cool blue tint
func (c *Cycle) Color() terminal.RGB {
	base := c.palette[c.paletteIndex]
	f := c.Brightness()

	r := int(float64(base.R) * f)
	g := int(float64(base.G) * f)
	b := int(float64(base.B) * f)

	return terminal.RGB{
		R: clampChannel(int(float64(r) * constants.CoolRed)),
		G: clampChannel(int(float64(g) * constants.CoolGreen)),
		B: clampChannel(int(float64(b)*constants.CoolBlue) + constants.CoolBlueAdd),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Phase returns the current phase
func (c *Cycle) Phase() Phase { return c.phase }

// Elapsed returns seconds spent in the current phase
func (c *Cycle) Elapsed() float64 { return c.elapsed }

// OffDelay returns the dwell time of the current or next Off phase
func (c *Cycle) OffDelay() float64 { return c.offDelay }

// PaletteIndex returns the index of the current base color
func (c *Cycle) PaletteIndex() int { return c.paletteIndex }

// Durations returns the fade-in, on and fade-out durations of the current cycle
// They are zero until the light first leaves Off
func (c *Cycle) Durations() (fadeIn, on, fadeOut float64) {
	return c.fadeInDuration, c.onDuration, c.fadeOutDuration
}

// SetOffDelay overrides the current off-delay
func (c *Cycle) SetOffDelay(d float64) { c.offDelay = d }
