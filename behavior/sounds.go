// Package behavior holds the per-entity logic attached to match entities
package behavior

// Sounds receives fire-and-forget effect triggers, failures stay inside the implementation
type Sounds interface {
	PlayBounce()
	PlayScore()
}

// Silent discards every trigger
type Silent struct{}

func (Silent) PlayBounce() {}
func (Silent) PlayScore()  {}

func orSilent(s Sounds) Sounds {
	if s == nil {
		return Silent{}
	}
	return s
}
