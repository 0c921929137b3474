package physics

import (
	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// UpdateBounds sets per-axis out-of-bounds flags and visibility against field extents
// An axis is out only when the entity is entirely past an edge; touching counts as inside
func UpdateBounds(e *engine.Entity, field vmath.Vec2) {
	lo, hi := e.Min(), e.Max()
	e.OutOfBoundsH = hi.X < 0 || lo.X > field.X
	e.OutOfBoundsV = hi.Y < 0 || lo.Y > field.Y
	e.Visible = !(e.OutOfBoundsH || e.OutOfBoundsV)
}

// ClampInside keeps the entity bounds fully inside the field on both axes
// Entities larger than the field are pinned to the origin edge
func ClampInside(e *engine.Entity, field vmath.Vec2) {
	maxX := field.X - e.Shape.Size.X
	maxY := field.Y - e.Shape.Size.Y
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	e.Shape.Pos.X = vmath.Clamp(e.Shape.Pos.X, 0, maxX)
	e.Shape.Pos.Y = vmath.Clamp(e.Shape.Pos.Y, 0, maxY)
}
