package constants

import (
	"time"

	"github.com/lixenwraith/snowtree/terminal"
)

// Frame Timing
const (
	// FrameRate is the target number of frames per second
	FrameRate = 30

	// FrameInterval is the fixed frame budget; the loop sleeps whatever remains of it
	FrameInterval = time.Second / FrameRate

	// FrameDelta is the simulation step applied per frame, in seconds
	FrameDelta = 1.0 / FrameRate
)

// Text
const (
	BannerText   = "С Новым годом!!!"
	FarewellText = "Счастливого рождества!"
)

// Layer Colors
var (
	TreeColor   = terminal.RGB{R: 0, G: 140, B: 0}
	TrunkColor  = terminal.RGB{R: 139, G: 69, B: 19}
	BannerColor = terminal.RGB{R: 0, G: 255, B: 0}
	SnowColor   = terminal.RGB{R: 255, G: 255, B: 255}
)
