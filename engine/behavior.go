package engine

// Behavior is per-entity logic driven by the tick and collision passes
// dt is in seconds
type Behavior interface {
	Update(dt float64)
	OnCollisionStart(other *Entity)
	OnCollisionEnd(other *Entity)
}

type binder interface {
	bind(e *Entity)
}

// BehaviorBase provides no-op hooks and the owner back-reference
// Embed by value; the owner is bound by Entity.AddBehavior
type BehaviorBase struct {
	owner *Entity
}

// Owner returns the entity this behavior is attached to, nil before attach
func (b *BehaviorBase) Owner() *Entity { return b.owner }

func (b *BehaviorBase) bind(e *Entity) { b.owner = e }

func (b *BehaviorBase) Update(float64) {}

func (b *BehaviorBase) OnCollisionStart(*Entity) {}

func (b *BehaviorBase) OnCollisionEnd(*Entity) {}
