package game

import "github.com/lixenwraith/dippid-pong/engine/fsm"

// State is the match flow state
type State = fsm.StateID

const (
	StateInactive State = iota
	StateWaiting
	StatePlaying
	StateResetting
	StateGameOver
)

var stateNames = map[State]string{
	StateInactive:  "INACTIVE",
	StateWaiting:   "WAITING",
	StatePlaying:   "PLAYING",
	StateResetting: "RESETTING",
	StateGameOver:  "GAME_OVER",
}

// StateName returns the graph name of s
func StateName(s State) string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
