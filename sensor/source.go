// Package sensor delivers named capability streams from external motion sensors
package sensor

// ScalarKey holds the value of single-number capabilities such as buttons
const ScalarKey = "value"

// Reading is one capability sample: axis name to value, or ScalarKey for scalars
type Reading map[string]float64

// Scalar returns the ScalarKey value
func (r Reading) Scalar() (float64, bool) {
	v, ok := r[ScalarKey]
	return v, ok
}

// Callback receives capability updates on the source's delivery goroutine
// Implementations must only record the reading, never call back into the simulation
type Callback func(Reading)

// Source is one player's sensor endpoint
type Source interface {
	// Has reports whether the capability has been seen
	Has(capability string) bool
	// Value returns the latest reading of the capability
	Value(capability string) (Reading, bool)
	// Subscribe registers fn for every future update of the capability
	Subscribe(capability string, fn Callback)
	// Close releases the transport, further updates are dropped
	Close() error
}
