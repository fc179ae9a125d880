package constants

import "github.com/lixenwraith/snowtree/terminal"

// Light Brightness
const (
	// MinBrightness keeps an unlit socket dimly visible
	MinBrightness = 0.15

	// FadeCurve is the exponent rate of the ignite/extinguish curves
	FadeCurve = 5.0
)

// Light Phase Durations (seconds)
// Each duration is Base * U(JitterMin, JitterMax), drawn when a light leaves Off
const (
	FadeInBase  = 1.5
	OnBase      = 3.0
	FadeOutBase = 1.5

	DurationJitterMin = 0.7
	DurationJitterMax = 1.3

	OffDelayMin = 0.5
	OffDelayMax = 2.0
)

// Cooling tint applied after brightness scaling
const (
	CoolRed     = 0.95
	CoolGreen   = 0.98
	CoolBlue    = 1.10
	CoolBlueAdd = 8
)

// LightPalette is the ordered color cycle of every light
var LightPalette = []terminal.RGB{
	{R: 255, G: 60, B: 60},   // red
	{R: 0, G: 140, B: 0},     // green
	{R: 80, G: 200, B: 255},  // cyan
	{R: 60, G: 100, B: 255},  // blue
	{R: 255, G: 210, B: 60},  // yellow
	{R: 255, G: 255, B: 255}, // white
	{R: 186, G: 85, B: 211},  // purple
	{R: 64, G: 224, B: 208},  // turquoise
	{R: 255, G: 105, B: 180}, // pink
	{R: 255, G: 165, B: 0},   // orange
}
