package physics

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/dippid-pong/engine"
)

// ErrInvalidAccuracy rejects non-positive interpolation step counts
var ErrInvalidAccuracy = errors.New("collision accuracy must be positive")

// CollisionManager runs the per-tick bounds and swept overlap passes
// and dispatches start/end events on pair transitions
type CollisionManager struct {
	accuracy int
	field    engine.Field
	pairs    *PairSet

	current  map[PairKey]struct{}
	eligible []*engine.Entity

	lastChecks int
}

// NewCollisionManager validates accuracy and binds the bounds provider
func NewCollisionManager(accuracy int, field engine.Field) (*CollisionManager, error) {
	if accuracy <= 0 {
		return nil, errors.Wrapf(ErrInvalidAccuracy, "got %d", accuracy)
	}
	if field == nil {
		return nil, errors.New("collision manager requires a field")
	}
	return &CollisionManager{
		accuracy: accuracy,
		field:    field,
		pairs:    NewPairSet(),
		current:  make(map[PairKey]struct{}),
	}, nil
}

// Accuracy returns the interpolation step count
func (cm *CollisionManager) Accuracy() int { return cm.accuracy }

// ActivePairs returns the number of overlapping pairs after the last pass
func (cm *CollisionManager) ActivePairs() int { return cm.pairs.Len() }

// LastChecks returns the number of pair tests in the last pass
func (cm *CollisionManager) LastChecks() int { return cm.lastChecks }

// Colliding reports whether a and b overlapped on the last pass
func (cm *CollisionManager) Colliding(a, b engine.EntityID) bool {
	return cm.pairs.Has(MakePairKey(a, b))
}

// Update runs one collision pass over r in registration order
func (cm *CollisionManager) Update(r *engine.Registry) {
	size := cm.field.Size()
	entities := r.Entities()

	cm.eligible = cm.eligible[:0]
	for _, e := range entities {
		if e.Removed() {
			continue
		}
		UpdateBounds(e, size)
		if e.Collidable {
			cm.eligible = append(cm.eligible, e)
		}
	}

	clear(cm.current)
	cm.lastChecks = 0

	for i := 0; i < len(cm.eligible); i++ {
		a := cm.eligible[i]
		for j := i + 1; j < len(cm.eligible); j++ {
			b := cm.eligible[j]
			// A handler may have destroyed either side earlier in this pass
			if a.Removed() || b.Removed() {
				continue
			}
			cm.lastChecks++
			if !Overlapping(a, b, cm.accuracy) {
				continue
			}

			key := MakePairKey(a.ID(), b.ID())
			cm.current[key] = struct{}{}
			if cm.pairs.Has(key) {
				continue
			}
			cm.pairs.Add(key)
			a.CollisionStart(b)
			if !b.Removed() {
				b.CollisionStart(a)
			}
		}
	}

	for _, key := range cm.pairs.Sorted() {
		if _, ok := cm.current[key]; ok {
			continue
		}
		cm.pairs.Remove(key)

		a, okA := r.Get(key.Lo)
		b, okB := r.Get(key.Hi)
		if !okA || !okB {
			continue
		}
		a.CollisionEnd(b)
		b.CollisionEnd(a)
	}
}

// Reset forgets all tracked pairs without firing end events
func (cm *CollisionManager) Reset() {
	cm.pairs.Clear()
}
