package sensor

import "sync"

// capabilityCache is the latest-value store and subscriber list shared by sources
type capabilityCache struct {
	mu     sync.RWMutex
	values map[string]Reading
	subs   map[string][]Callback
}

func newCapabilityCache() capabilityCache {
	return capabilityCache{
		values: make(map[string]Reading),
		subs:   make(map[string][]Callback),
	}
}

func (c *capabilityCache) Has(capability string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.values[capability]
	return ok
}

func (c *capabilityCache) Value(capability string) (Reading, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.values[capability]
	if !ok {
		return nil, false
	}
	out := make(Reading, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out, true
}

func (c *capabilityCache) Subscribe(capability string, fn Callback) {
	c.mu.Lock()
	c.subs[capability] = append(c.subs[capability], fn)
	c.mu.Unlock()
}

// publish stores readings then invokes subscribers outside the lock
func (c *capabilityCache) publish(readings map[string]Reading) {
	type delivery struct {
		fns []Callback
		r   Reading
	}
	var pending []delivery

	c.mu.Lock()
	for name, r := range readings {
		c.values[name] = r
		if fns := c.subs[name]; len(fns) > 0 {
			pending = append(pending, delivery{fns: fns, r: r})
		}
	}
	c.mu.Unlock()

	for _, d := range pending {
		for _, fn := range d.fns {
			fn(d.r)
		}
	}
}
