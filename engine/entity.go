package engine

import "github.com/lixenwraith/dippid-pong/vmath"

// EntityID is a registry-assigned handle, never reused within a registry
type EntityID uint64

// Tag classifies an entity for collision dispatch
type Tag uint8

const (
	TagNone Tag = iota
	TagBall
	TagPaddle
	TagBorder
	TagConfetti
	TagDecor
)

var tagNames = [...]string{"none", "ball", "paddle", "border", "confetti", "decor"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// ShapeKind selects how a renderer draws the shape
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeDashed
)

// RGB is a renderer-agnostic color
type RGB struct {
	R, G, B uint8
}

// Shape is the renderable descriptor owned by an entity
// Pos is the bottom-left corner in field units
type Shape struct {
	Pos   vmath.Vec2
	Size  vmath.Vec2
	Color RGB
	Kind  ShapeKind
}

// Entity is a simulated axis-aligned rectangle with attached behaviors
type Entity struct {
	id EntityID

	Shape    Shape
	Velocity vmath.Vec2
	PrevPos  vmath.Vec2

	Name       string
	Tag        Tag
	Collidable bool
	Visible    bool

	OutOfBoundsH bool
	OutOfBoundsV bool

	behaviors []Behavior
	removed   bool
}

func (e *Entity) ID() EntityID { return e.id }

// Removed reports whether the entity is marked for compaction
func (e *Entity) Removed() bool { return e.removed }

// Center returns the midpoint of current bounds
func (e *Entity) Center() vmath.Vec2 {
	return e.Shape.Pos.Add(e.Shape.Size.Scale(0.5))
}

// SetCenter moves the entity so its midpoint is c
func (e *Entity) SetCenter(c vmath.Vec2) {
	e.Shape.Pos = c.Sub(e.Shape.Size.Scale(0.5))
}

// Min returns the bottom-left corner
func (e *Entity) Min() vmath.Vec2 { return e.Shape.Pos }

// Max returns the top-right corner
func (e *Entity) Max() vmath.Vec2 { return e.Shape.Pos.Add(e.Shape.Size) }

// Corners returns the four bounds corners anchored at pos
func (e *Entity) Corners(pos vmath.Vec2) [4]vmath.Vec2 {
	w, h := e.Shape.Size.X, e.Shape.Size.Y
	return [4]vmath.Vec2{
		pos,
		{X: pos.X + w, Y: pos.Y},
		{X: pos.X, Y: pos.Y + h},
		{X: pos.X + w, Y: pos.Y + h},
	}
}

// Contains tests p against current bounds, edges inclusive
func (e *Entity) Contains(p vmath.Vec2) bool {
	lo, hi := e.Min(), e.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Integrate records PrevPos then advances position by velocity
func (e *Entity) Integrate(dt float64) {
	e.PrevPos = e.Shape.Pos
	e.Shape.Pos = e.Shape.Pos.Add(e.Velocity.Scale(dt))
}

// Teleport moves the entity without producing a sweep on the next collision pass
func (e *Entity) Teleport(pos vmath.Vec2) {
	e.Shape.Pos = pos
	e.PrevPos = pos
}

// AddBehavior attaches b and binds its back-reference
func (e *Entity) AddBehavior(b Behavior) {
	if bb, ok := b.(binder); ok {
		bb.bind(e)
	}
	e.behaviors = append(e.behaviors, b)
}

// Behaviors returns attached behaviors in attach order
func (e *Entity) Behaviors() []Behavior {
	return e.behaviors
}

// Update runs every attached behavior
func (e *Entity) Update(dt float64) {
	for _, b := range e.behaviors {
		b.Update(dt)
	}
}

// CollisionStart forwards a collision start to every attached behavior
func (e *Entity) CollisionStart(other *Entity) {
	for _, b := range e.behaviors {
		b.OnCollisionStart(other)
	}
}

// CollisionEnd forwards a collision end to every attached behavior
func (e *Entity) CollisionEnd(other *Entity) {
	for _, b := range e.behaviors {
		b.OnCollisionEnd(other)
	}
}

// BehaviorOf returns the first attached behavior of type T
func BehaviorOf[T Behavior](e *Entity) (T, bool) {
	for _, b := range e.behaviors {
		if v, ok := b.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
