package main

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dippid-pong/game"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/status"
	"github.com/lixenwraith/dippid-pong/viz"
)

// matchTicker advances the match and feeds observers from the scheduler goroutine
type matchTicker struct {
	match   *game.Match
	hub     *viz.Hub
	sources []*sensor.UDPSource

	dropped  *atomic.Int64
	watchers *atomic.Int64
}

func newMatchTicker(m *game.Match, hub *viz.Hub, reg *status.Registry, sources []*sensor.UDPSource) *matchTicker {
	return &matchTicker{
		match:    m,
		hub:      hub,
		sources:  sources,
		dropped:  reg.Ints.Get(status.KeyDropped),
		watchers: reg.Ints.Get(status.KeyWatchers),
	}
}

func (t *matchTicker) Tick(dt time.Duration) error {
	if err := t.match.Tick(dt); err != nil {
		return err
	}

	if t.hub != nil {
		t.hub.Offer(t.match.Snapshot())
		t.watchers.Store(int64(t.hub.Watchers()))
	}

	var dropped uint64
	for _, s := range t.sources {
		dropped += s.Dropped()
	}
	t.dropped.Store(int64(dropped))
	return nil
}
