package audio

import (
	"testing"

	"github.com/lixenwraith/snowtree/constants"
)

func TestChimeSilentUntilStarted(t *testing.T) {
	c := NewChime(0.5)

	if c.Active() {
		t.Fatal("Expected new chime to be inactive")
	}

	c.Ring(2)
	if c.mixer.Len() != 0 {
		t.Errorf("Expected no queued tones, got %d", c.mixer.Len())
	}

	// Stop on an inactive chime is a no-op
	c.Stop()
}

func TestChimeRingQueuesTone(t *testing.T) {
	c := NewChime(0.5)
	// Bypass the device; the mixer is drained by hand
	c.active = true

	c.Ring(0)
	c.Ring(7)
	if c.mixer.Len() != 2 {
		t.Fatalf("Expected 2 queued tones, got %d", c.mixer.Len())
	}

	// The mixer never ends on its own, so stream past one tone length
	buf := make([][2]float64, 512)
	for streamed := 0; streamed < c.rate.N(constants.ChimeDuration)+2*len(buf); streamed += len(buf) {
		c.mixer.Stream(buf)
	}
	if c.mixer.Len() != 0 {
		t.Errorf("Expected tones to finish, %d left", c.mixer.Len())
	}
}

func TestChimeVolumeClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.3, 0.3},
		{4, 1},
	}

	for _, tt := range tests {
		if got := NewChime(tt.in).volume; got != tt.want {
			t.Errorf("NewChime(%f).volume = %f, want %f", tt.in, got, tt.want)
		}
	}
}
