// Package audio plays a short bell when a tree light ignites.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snowtree/constants"
)

// oscillator generates a sine wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates a sine generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream up over attack and down over the tail
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	tailSamples   int
	totalSamples  int
}

// NewEnvelope shapes s with a linear attack and a linear tail ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, tail time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer:      s,
		attackSamples: min(rate.N(attack), total),
		tailSamples:   min(rate.N(tail), total),
		totalSamples:  total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	tailStart := e.totalSamples - e.tailSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.tailSamples > 0 && e.position >= tailStart {
			vol = min(vol, float64(e.totalSamples-e.position)/float64(e.tailSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; log2(0) is -Inf so zero goes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// BellTone is a fundamental plus a quieter, shorter octave overtone
func BellTone(freq, volume float64, rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(freq, constants.ChimeDuration, rate)
	fundShaped := NewEnvelope(fund, constants.ChimeDuration, constants.ChimeAttack, constants.ChimeFundamentalTail, rate)

	over := NewOscillator(freq*2, constants.ChimeDuration, rate)
	overShaped := NewEnvelope(over, constants.ChimeDuration, constants.ChimeAttack, constants.ChimeOvertoneTail, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, volume)
}

// Pitch maps a palette index onto the chime scale
func Pitch(index int) float64 {
	n := len(constants.ChimeScale)
	return constants.ChimeScale[((index%n)+n)%n]
}
