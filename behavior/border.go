package behavior

import (
	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// Direction is the side a border's surface faces
type Direction uint8

const (
	FacingUp Direction = iota
	FacingDown
)

// Border is a static reflecting wall
type Border struct {
	engine.BehaviorBase
	facing Direction
}

// NewBorder creates a border facing dir
func NewBorder(dir Direction) *Border {
	return &Border{facing: dir}
}

// Facing returns the configured direction
func (b *Border) Facing() Direction { return b.facing }

// Normal returns the unit surface normal
func (b *Border) Normal() vmath.Vec2 {
	if b.facing == FacingDown {
		return vmath.V2(0, -1)
	}
	return vmath.V2(0, 1)
}
