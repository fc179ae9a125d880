package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snowtree/constants"
)

// Chime rings a bell tone per light ignition through the system speaker
// Until Start succeeds every Ring is silently dropped
type Chime struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	active bool
}

// NewChime creates a chime at volume in [0, 1]
func NewChime(volume float64) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.ChimeSampleRate),
		volume: min(max(volume, 0), 1),
	}
}

// Start opens the audio device; on error the chime stays silent
func (c *Chime) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(constants.ChimeBufferSize)); err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	speaker.Play(c.mixer)
	c.active = true
	return nil
}

// Ring plays the tone for a palette index
func (c *Chime) Ring(paletteIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	tone := BellTone(Pitch(paletteIndex), c.volume, c.rate)
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Active reports whether tones reach the speaker
func (c *Chime) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Stop drops pending tones and releases the device
func (c *Chime) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	speaker.Clear()
	speaker.Close()
	c.active = false
	log.Printf("audio: chime stopped")
}
