package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dippid-pong/engine"
)

// HUD and field colors
var (
	RgbBackground  = tcell.NewRGBColor(12, 12, 16)
	RgbScore       = tcell.NewRGBColor(255, 255, 255)
	RgbPortLabel   = tcell.NewRGBColor(120, 120, 120)
	RgbStatusIdle  = tcell.NewRGBColor(255, 220, 5)   // nobody connected
	RgbStatusReady = tcell.NewRGBColor(100, 255, 100) // ready-up and scored
	RgbStatusPlay  = tcell.NewRGBColor(160, 160, 160)
	RgbStatusWin   = tcell.NewRGBColor(255, 165, 0)
	RgbMuted       = tcell.NewRGBColor(255, 80, 80)
)

// toColor converts an entity color to a terminal color
func toColor(c engine.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// statusColor picks the headline color for a state name
func statusColor(state string, anyConnected bool) tcell.Color {
	if !anyConnected {
		return RgbStatusIdle
	}
	switch state {
	case "INACTIVE", "WAITING", "RESETTING":
		return RgbStatusReady
	case "GAME_OVER":
		return RgbStatusWin
	default:
		return RgbStatusPlay
	}
}
