package parameter

// Entity Colors
var (
	ColorBall      = [3]uint8{255, 255, 255}
	ColorPaddle    = [3]uint8{255, 255, 255}
	ColorBorder    = [3]uint8{255, 255, 255}
	ColorSeparator = [3]uint8{90, 90, 90}
)

// HUD
const (
	// HUDRows is the number of terminal rows reserved above the field
	HUDRows = 3

	// SeparatorWidth and SeparatorDash shape the center line
	SeparatorWidth = 4
	SeparatorDash  = 24
)

// Spectator Feed
const (
	// VizAddr is the default listen address, empty disables the feed
	VizAddr = ""

	// VizEveryNTicks throttles snapshot broadcast relative to the tick rate
	VizEveryNTicks = 3

	// VizClientBuffer is the per-watcher frame queue length
	VizClientBuffer = 8
)
