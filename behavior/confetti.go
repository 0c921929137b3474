package behavior

import "github.com/lixenwraith/dippid-pong/engine"

// Confetti destroys its particle once it has left the field on either axis
type Confetti struct {
	engine.BehaviorBase
	registry *engine.Registry
}

func NewConfetti(r *engine.Registry) *Confetti {
	return &Confetti{registry: r}
}

func (c *Confetti) Update(float64) {
	e := c.Owner()
	if e.OutOfBoundsH || e.OutOfBoundsV {
		c.registry.Destroy(e.ID())
	}
}
