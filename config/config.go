// Package config resolves runtime options from the environment.
// The program takes no flags; every option has a working default.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/snowtree/constants"
	"github.com/lixenwraith/snowtree/terminal"
)

// Backend selects the Surface implementation
type Backend string

const (
	BackendANSI  Backend = "ansi"
	BackendTcell Backend = "tcell"
)

// Environment variable names
const (
	EnvSeed    = "SNOWTREE_SEED"
	EnvColor   = "SNOWTREE_COLOR"
	EnvBackend = "SNOWTREE_BACKEND"
	EnvAudio   = "SNOWTREE_AUDIO"
	EnvVolume  = "SNOWTREE_VOLUME"
	EnvDebug   = "SNOWTREE_DEBUG"
)

// Config holds everything the animation needs from outside
type Config struct {
	// Seed for the root random generator; 0 picks a random seed
	Seed uint64

	// ColorMode is used when ColorAuto is false
	ColorMode terminal.ColorMode
	ColorAuto bool

	Backend Backend

	// Audio enables the ignition chime
	Audio  bool
	Volume float64

	// Debug writes a log file
	Debug bool
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		ColorAuto: true,
		Backend:   BackendANSI,
		Volume:    constants.ChimeVolume,
	}
}

// Load reads the process environment
func Load() *Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads options through getenv
// Unparseable values are ignored and the default kept
func LoadFrom(getenv func(string) string) *Config {
	cfg := Default()

	if seed := getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if mode, ok := terminal.ParseColorMode(getenv(EnvColor)); ok {
		cfg.ColorMode = mode
		cfg.ColorAuto = false
	}

	switch Backend(strings.ToLower(getenv(EnvBackend))) {
	case BackendTcell:
		cfg.Backend = BackendTcell
	case BackendANSI:
		cfg.Backend = BackendANSI
	}

	if enabled := getenv(EnvAudio); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if debug := getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	return cfg
}

// ResolveColorMode returns the configured mode or the detected one
func (c *Config) ResolveColorMode() terminal.ColorMode {
	if c.ColorAuto {
		return terminal.DetectColorMode()
	}
	return c.ColorMode
}
