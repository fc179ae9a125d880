package constants

// Snow
const (
	// SnowDensity is flakes per terminal cell
	SnowDensity = 0.015

	// SnowMinCount is the population floor on small terminals
	SnowMinCount = 20

	// Fall speed range in rows per second
	SnowSpeedMin = 5.0
	SnowSpeedMax = 15.0
)

// SnowGlyphs are the flake shapes
var SnowGlyphs = []rune{'.', '*', '·'}
