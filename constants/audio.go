package constants

import "time"

// Chime Timing
const (
	ChimeDuration        = 600 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeFundamentalTail = 550 * time.Millisecond
	ChimeOvertoneTail    = 200 * time.Millisecond

	// ChimeBufferSize is the speaker buffer length
	ChimeBufferSize = 100 * time.Millisecond
)

// Chime Levels
const (
	ChimeSampleRate = 44100
	ChimeVolume     = 0.25
)

// ChimeScale is a major pentatonic scale from A4, indexed by light palette position
var ChimeScale = []float64{440.00, 493.88, 554.37, 659.25, 739.99, 880.00, 987.77, 1108.73, 1318.51, 1479.98}
