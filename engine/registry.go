package engine

// Registry owns the live entity set
// Slots keep registration order; Destroy marks and Compact sweeps between ticks
// Not safe for concurrent use, the tick goroutine is the only owner
type Registry struct {
	entities []*Entity
	byID     map[EntityID]*Entity
	nextID   EntityID
	marked   int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entities: make([]*Entity, 0, 64),
		byID:     make(map[EntityID]*Entity),
		nextID:   1,
	}
}

// Create registers a new entity and returns its handle
func (r *Registry) Create(shape Shape, name string, tag Tag, collidable bool) *Entity {
	e := &Entity{
		id:         r.nextID,
		Shape:      shape,
		PrevPos:    shape.Pos,
		Name:       name,
		Tag:        tag,
		Collidable: collidable,
		Visible:    true,
	}
	r.nextID++
	r.entities = append(r.entities, e)
	r.byID[e.id] = e
	return e
}

// Destroy clears behaviors and marks the entity for removal
// Removal is deferred to Compact so in-flight iteration stays valid
func (r *Registry) Destroy(id EntityID) bool {
	e, ok := r.byID[id]
	if !ok || e.removed {
		return false
	}
	e.behaviors = nil
	e.removed = true
	e.Collidable = false
	e.Visible = false
	delete(r.byID, id)
	r.marked++
	return true
}

// Compact drops marked slots preserving order, returns removed count
func (r *Registry) Compact() int {
	if r.marked == 0 {
		return 0
	}
	n := 0
	for _, e := range r.entities {
		if !e.removed {
			r.entities[n] = e
			n++
		}
	}
	for i := n; i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	removed := len(r.entities) - n
	r.entities = r.entities[:n]
	r.marked = 0
	return removed
}

// Get returns a live entity by id
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Entities returns the slot list in registration order, including marked slots
// The slice is only valid until the next Create or Compact
func (r *Registry) Entities() []*Entity {
	return r.entities
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return len(r.byID)
}

// FindByName returns the first live entity with the given name
func (r *Registry) FindByName(name string) (*Entity, bool) {
	for _, e := range r.entities {
		if !e.removed && e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// FindByTag returns live entities carrying tag, in registration order
func (r *Registry) FindByTag(tag Tag) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if !e.removed && e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// CountByTag counts live entities carrying tag
func (r *Registry) CountByTag(tag Tag) int {
	n := 0
	for _, e := range r.entities {
		if !e.removed && e.Tag == tag {
			n++
		}
	}
	return n
}

// Integrate advances every live entity then runs its behaviors
// Entities created by a behavior during this pass are not visited until the next tick
func (r *Registry) Integrate(dt float64) {
	snapshot := r.entities
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.Integrate(dt)
		e.Update(dt)
	}
}

// FindByBehavior returns live entities with an attached behavior of type T
func FindByBehavior[T Behavior](r *Registry) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.removed {
			continue
		}
		if _, ok := BehaviorOf[T](e); ok {
			out = append(out, e)
		}
	}
	return out
}

// FirstBehavior returns the first live behavior of type T in registration order
func FirstBehavior[T Behavior](r *Registry) (T, bool) {
	for _, e := range r.entities {
		if e.removed {
			continue
		}
		if b, ok := BehaviorOf[T](e); ok {
			return b, true
		}
	}
	var zero T
	return zero, false
}
