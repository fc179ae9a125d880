package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	// 3. Check TERM for known true color terminals
	termLower := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(termLower, "truecolor") ||
		strings.Contains(termLower, "24bit") ||
		strings.Contains(termLower, "direct") {
		return ColorModeTrueColor
	}

	// 4. termenv knows a few more (TERM_PROGRAM, cloud shells); output need not be a TTY here
	if termenv.NewOutput(os.Stdout, termenv.WithUnsafe()).EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}

	// 5. Default to 256-color
	return ColorMode256
}
