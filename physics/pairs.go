package physics

import (
	"sort"

	"github.com/lixenwraith/dippid-pong/engine"
)

// PairKey is an unordered entity pair, Lo < Hi
type PairKey struct {
	Lo, Hi engine.EntityID
}

// MakePairKey normalizes argument order
func MakePairKey(a, b engine.EntityID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// PairSet tracks currently overlapping pairs
type PairSet struct {
	pairs map[PairKey]struct{}
}

// NewPairSet creates an empty set
func NewPairSet() *PairSet {
	return &PairSet{pairs: make(map[PairKey]struct{})}
}

func (s *PairSet) Has(k PairKey) bool {
	_, ok := s.pairs[k]
	return ok
}

func (s *PairSet) Add(k PairKey) {
	s.pairs[k] = struct{}{}
}

func (s *PairSet) Remove(k PairKey) {
	delete(s.pairs, k)
}

func (s *PairSet) Len() int {
	return len(s.pairs)
}

// Clear drops every pair without events
func (s *PairSet) Clear() {
	clear(s.pairs)
}

// Sorted returns keys ordered by (Lo, Hi)
func (s *PairSet) Sorted() []PairKey {
	keys := make([]PairKey, 0, len(s.pairs))
	for k := range s.pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo < keys[j].Lo
		}
		return keys[i].Hi < keys[j].Hi
	})
	return keys
}
