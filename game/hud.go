package game

import (
	"fmt"

	"github.com/lixenwraith/dippid-pong/behavior"
)

// StatusText is the headline shown above the field
func (m *Match) StatusText() string {
	lc, rc := m.left.IsConnected(), m.right.IsConnected()
	if !lc && !rc {
		return "Use the DIPPID app to connect to the ports below!"
	}

	switch m.State() {
	case StateInactive, StateWaiting:
		connected, ready := 0, 0
		for _, p := range []*behavior.Paddle{m.left, m.right} {
			if p.IsConnected() {
				connected++
				if p.IsReady() {
					ready++
				}
			}
		}
		return fmt.Sprintf("Press button_1 to ready up! (%d/%d)", ready, connected)
	case StateResetting:
		if m.lastScore != nil {
			return fmt.Sprintf("%d scored!", m.lastScore.PlayerID)
		}
	case StateGameOver:
		if m.winner != nil {
			return fmt.Sprintf("%d wins!", m.winner.PlayerID)
		}
	}
	return "Score"
}

// ConnectionLabel shows a player slot and who controls it
func ConnectionLabel(p *behavior.Paddle) string {
	if p.IsConnected() {
		return fmt.Sprintf("%d (Connected)", p.PlayerID)
	}
	return fmt.Sprintf("%d (NPC)", p.PlayerID)
}
