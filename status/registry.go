// Package status holds lock-free match metrics shared between the tick loop and observers
package status

import "sync/atomic"

// Metric keys written by the match
const (
	KeyMatchID     = "match.id"
	KeyState       = "match.state"
	KeyTicks       = "match.ticks"
	KeyScoreLeft   = "score.left"
	KeyScoreRight  = "score.right"
	KeyBounces     = "ball.bounces"
	KeyBallSpeed   = "ball.speed"
	KeyEntities    = "registry.entities"
	KeyActivePairs = "collision.pairs"
	KeyChecks      = "collision.checks"
	KeyLeftOnline  = "player.left.connected"
	KeyRightOnline = "player.right.connected"
	KeyTickMillis  = "tick.ms"
	KeyDropped     = "sensor.dropped"
	KeyWatchers    = "viz.watchers"
)

// Registry groups typed metric maps
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a flat map suitable for JSON encoding
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, p *atomic.Bool) { out[k] = p.Load() })
	r.Ints.Range(func(k string, p *atomic.Int64) { out[k] = p.Load() })
	r.Floats.Range(func(k string, p *AtomicFloat) { out[k] = p.Get() })
	r.Strings.Range(func(k string, p *AtomicString) { out[k] = p.Load() })
	return out
}
