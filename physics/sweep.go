package physics

import (
	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// Swept samples the four corners of a between its previous and current position
// in steps 0..n inclusive and reports whether any sample lies inside b's current bounds
func Swept(a, b *engine.Entity, n int) bool {
	from := a.Corners(a.PrevPos)
	to := a.Corners(a.Shape.Pos)
	inv := 1.0 / float64(n)

	for step := 0; step <= n; step++ {
		t := float64(step) * inv
		for c := range from {
			if b.Contains(vmath.Lerp(from[c], to[c], t)) {
				return true
			}
		}
	}
	return false
}

// Overlapping runs the sweep in both directions so the result does not depend on argument order
func Overlapping(a, b *engine.Entity, n int) bool {
	return Swept(a, b, n) || Swept(b, a, n)
}
