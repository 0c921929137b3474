package sensor

import "sync/atomic"

// ManualSource is an in-process source fed by Push, used for replays and tests
type ManualSource struct {
	capabilityCache
	closed atomic.Bool
}

// NewManualSource creates an empty source
func NewManualSource() *ManualSource {
	return &ManualSource{capabilityCache: newCapabilityCache()}
}

// Push publishes readings synchronously on the caller's goroutine
func (m *ManualSource) Push(readings map[string]Reading) {
	if m.closed.Load() {
		return
	}
	m.publish(readings)
}

// Forget removes a capability as if the sender stopped reporting it
func (m *ManualSource) Forget(capability string) {
	m.mu.Lock()
	delete(m.values, capability)
	m.mu.Unlock()
}

func (m *ManualSource) Close() error {
	m.closed.Store(true)
	return nil
}

// Closed reports whether Close was called
func (m *ManualSource) Closed() bool {
	return m.closed.Load()
}
