package engine

import (
	"sync"

	"github.com/lixenwraith/dippid-pong/vmath"
)

// Field provides the play-field extents in field units
type Field interface {
	Size() vmath.Vec2
}

// FixedField is a resizable-by-host field, read once per tick
type FixedField struct {
	mu   sync.RWMutex
	size vmath.Vec2
}

// NewFixedField creates a field of width x height
func NewFixedField(width, height float64) *FixedField {
	return &FixedField{size: vmath.V2(width, height)}
}

func (f *FixedField) Size() vmath.Vec2 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.size
}

// Resize changes the extents, host-initiated only
func (f *FixedField) Resize(width, height float64) {
	f.mu.Lock()
	f.size = vmath.V2(width, height)
	f.mu.Unlock()
}
