package light

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/terminal"
)

func newTestCycle(seed uint64) *Cycle {
	return New(constants.LightPalette, rand.New(rand.NewPCG(seed, seed)))
}

// TestPhaseOrder verifies the cycle never skips or reorders phases
func TestPhaseOrder(t *testing.T) {
	for _, dt := range []float64{0, 1.0 / 30, 0.25, 1.0, 10.0} {
		c := newTestCycle(42)
		prev := c.Phase()
		prevIndex := c.PaletteIndex()
		transitions := 0

		for i := 0; i < 5000 && transitions < 40; i++ {
			changed := c.Advance(dt)
			cur := c.Phase()

			if !changed {
				if cur != prev {
					t.Fatalf("dt=%v: phase changed from %v to %v without reporting it", dt, prev, cur)
				}
				if c.PaletteIndex() != prevIndex {
					t.Fatalf("dt=%v: palette changed without a transition", dt)
				}
				continue
			}

			transitions++
			if cur != prev.Next() {
				t.Fatalf("dt=%v: illegal transition %v -> %v", dt, prev, cur)
			}

			wantIndex := prevIndex
			if prev == PhaseFadeOut {
				wantIndex = (prevIndex + 1) % len(constants.LightPalette)
			}
			if c.PaletteIndex() != wantIndex {
				t.Fatalf("dt=%v: %v -> %v moved palette %d -> %d", dt, prev, cur, prevIndex, c.PaletteIndex())
			}

			prev = cur
			prevIndex = c.PaletteIndex()
		}

		if dt > 0 && transitions < 40 {
			t.Errorf("dt=%v: expected the cycle to keep running, saw %d transitions", dt, transitions)
		}
		if dt == 0 && transitions != 0 {
			t.Errorf("dt=0: expected no transitions, saw %d", transitions)
		}
	}
}

// TestBrightnessBoundsAndMonotonic checks range and direction of fades
func TestBrightnessBoundsAndMonotonic(t *testing.T) {
	c := newTestCycle(7)
	const dt = 1.0 / 30

	last := c.Brightness()
	lastPhase := c.Phase()

	for i := 0; i < 30*60; i++ {
		c.Advance(dt)
		b := c.Brightness()

		if b < constants.MinBrightness || b > 1.0 {
			t.Fatalf("Brightness %v out of range in %v", b, c.Phase())
		}

		if c.Phase() == lastPhase {
			switch c.Phase() {
			case PhaseFadeIn:
				if b <= last {
					t.Fatalf("Expected strictly increasing fade-in, got %v after %v", b, last)
				}
			case PhaseFadeOut:
				if b >= last {
					t.Fatalf("Expected strictly decreasing fade-out, got %v after %v", b, last)
				}
			case PhaseOn:
				if b != 1.0 {
					t.Fatalf("Expected full brightness when on, got %v", b)
				}
			case PhaseOff:
				if b != constants.MinBrightness {
					t.Fatalf("Expected floor brightness when off, got %v", b)
				}
			}
		}

		last = b
		lastPhase = c.Phase()
	}
}

func TestDurationsDrawnOnIgnition(t *testing.T) {
	c := newTestCycle(3)

	if fi, on, fo := c.Durations(); fi != 0 || on != 0 || fo != 0 {
		t.Fatalf("Expected no durations before ignition, got %v %v %v", fi, on, fo)
	}

	for c.Phase() == PhaseOff {
		c.Advance(0.1)
	}

	fi, on, fo := c.Durations()
	check := func(name string, got, base float64) {
		lo := base * constants.DurationJitterMin
		hi := base * constants.DurationJitterMax
		if got < lo || got > hi {
			t.Errorf("%s duration %v outside [%v, %v]", name, got, lo, hi)
		}
	}
	check("fade-in", fi, constants.FadeInBase)
	check("on", on, constants.OnBase)
	check("fade-out", fo, constants.FadeOutBase)
}

func TestOffDelayRange(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		c := newTestCycle(seed)
		d := c.OffDelay()
		if d < constants.OffDelayMin || d >= constants.OffDelayMax {
			t.Errorf("seed %d: off-delay %v outside [%v, %v)", seed, d, constants.OffDelayMin, constants.OffDelayMax)
		}
		if c.Phase() != PhaseOff || c.Elapsed() != 0 {
			t.Errorf("seed %d: expected fresh light in Off at elapsed 0", seed)
		}
	}
}

func TestNoEarlyIgnition(t *testing.T) {
	c := newTestCycle(9)
	c.SetOffDelay(2.0)

	if c.Advance(1.0 / 30) {
		t.Fatal("Expected no transition after one frame with off-delay 2.0")
	}
	if c.Phase() != PhaseOff {
		t.Errorf("Expected Off, got %v", c.Phase())
	}
}

func TestColor(t *testing.T) {
	palette := []terminal.RGB{{R: 200, G: 100, B: 250}}
	c := New(palette, rand.New(rand.NewPCG(1, 1)))

	// Off: factor 0.15
	// scaled 30,15,37 -> 28,14,48
	want := terminal.RGB{R: 28, G: 14, B: 48}
	if got := c.Color(); got != want {
		t.Errorf("Off color: expected %v, got %v", want, got)
	}

	for c.Phase() != PhaseOn {
		c.Advance(0.05)
	}

	// On: 200*0.95=190, 100*0.98=98, min(255, 275+8)=255
	want = terminal.RGB{R: 190, G: 98, B: 255}
	if got := c.Color(); got != want {
		t.Errorf("On color: expected %v, got %v", want, got)
	}
}

func TestEmptyPalette(t *testing.T) {
	c := New(nil, rand.New(rand.NewPCG(1, 1)))
	if c.PaletteIndex() != 0 {
		t.Errorf("Expected index 0 for fallback palette, got %d", c.PaletteIndex())
	}
	_ = c.Color()
}

func TestIndependentLights(t *testing.T) {
	root := rand.New(rand.NewPCG(100, 100))
	a := New(constants.LightPalette, rand.New(rand.NewPCG(root.Uint64(), root.Uint64())))
	b := New(constants.LightPalette, rand.New(rand.NewPCG(root.Uint64(), root.Uint64())))

	if a.OffDelay() == b.OffDelay() {
		t.Error("Expected independently seeded lights to differ")
	}
}

func TestPhaseString(t *testing.T) {
	names := map[Phase]string{
		PhaseOff:     "off",
		PhaseFadeIn:  "fade_in",
		PhaseOn:      "on",
		PhaseFadeOut: "fade_out",
		Phase(9):     "unknown",
	}
	for p, want := range names {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}
