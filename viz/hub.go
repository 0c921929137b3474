package viz

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/dippid-pong/game"
)

// watcher is one connected spectator
type watcher struct {
	id     uuid.UUID
	binary bool
	send   chan []byte
}

// Hub fans encoded snapshots out to watchers
// Offer never blocks: a watcher whose queue is full misses the frame
type Hub struct {
	mu       sync.RWMutex
	watchers map[uuid.UUID]*watcher

	every  uint64
	buffer int

	offered atomic.Uint64
	sent    atomic.Uint64
	dropped atomic.Uint64

	logger *slog.Logger
}

// NewHub broadcasts every n-th offered snapshot with a per-watcher queue of buffer frames
func NewHub(every, buffer int) *Hub {
	if every < 1 {
		every = 1
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		watchers: make(map[uuid.UUID]*watcher),
		every:    uint64(every),
		buffer:   buffer,
		logger:   slog.Default().With("component", "viz"),
	}
}

func (h *Hub) register(binary bool) *watcher {
	w := &watcher{id: uuid.New(), binary: binary, send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.watchers[w.id] = w
	n := len(h.watchers)
	h.mu.Unlock()
	h.logger.Info("watcher joined", "watcher", w.id.String(), "binary", binary, "watchers", n)
	return w
}

func (h *Hub) unregister(w *watcher) {
	h.mu.Lock()
	if _, ok := h.watchers[w.id]; ok {
		delete(h.watchers, w.id)
		close(w.send)
	}
	n := len(h.watchers)
	h.mu.Unlock()
	h.logger.Info("watcher left", "watcher", w.id.String(), "watchers", n)
}

// Watchers returns the number of connected spectators
func (h *Hub) Watchers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

// Dropped returns frames skipped for slow watchers
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Sent returns frames queued to watchers
func (h *Hub) Sent() uint64 { return h.sent.Load() }

// Offer queues snap for every watcher if this offer falls on the broadcast cadence
// Encoding is skipped entirely while nobody watches
func (h *Hub) Offer(snap *game.Snapshot) {
	n := h.offered.Add(1)
	if snap == nil || (n-1)%h.every != 0 || h.Watchers() == 0 {
		return
	}

	frame, err := EncodeFrame(snap)
	if err != nil {
		h.logger.Warn("snapshot encode failed", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, w := range h.watchers {
		payload := frame.Text
		if w.binary {
			payload = frame.Binary
		}
		select {
		case w.send <- payload:
			h.sent.Add(1)
		default:
			h.dropped.Add(1)
		}
	}
}

// Close disconnects every watcher
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, w := range h.watchers {
		close(w.send)
		delete(h.watchers, id)
	}
}
