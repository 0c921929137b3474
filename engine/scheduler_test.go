package engine

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingTicker struct {
	ticks  atomic.Int64
	failAt int64
}

var errTickFailed = errors.New("tick failed")

func (c *countingTicker) Tick(dt time.Duration) error {
	n := c.ticks.Add(1)
	if c.failAt > 0 && n >= c.failAt {
		return errTickFailed
	}
	return nil
}

func TestSchedulerTicksUntilStopped(t *testing.T) {
	ct := &countingTicker{}
	s := NewScheduler(ct, NewMonotonicTimeProvider(), 2*time.Millisecond)
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	n := ct.ticks.Load()
	if n == 0 {
		t.Fatal("Expected scheduler to tick at least once")
	}
	if uint64(n) != s.TickCount() {
		t.Errorf("Expected tick count %d, got %d", n, s.TickCount())
	}

	time.Sleep(10 * time.Millisecond)
	if ct.ticks.Load() != n {
		t.Error("Expected no ticks after Stop")
	}
	if s.Err() != nil {
		t.Errorf("Expected nil error, got %v", s.Err())
	}
}

func TestSchedulerStopsOnTickError(t *testing.T) {
	ct := &countingTicker{failAt: 3}
	s := NewScheduler(ct, NewMonotonicTimeProvider(), time.Millisecond)
	s.Start()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("Expected scheduler to stop after tick error")
	}

	if !errors.Is(s.Err(), errTickFailed) {
		t.Errorf("Expected errTickFailed, got %v", s.Err())
	}
	s.Stop()
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler(&countingTicker{}, NewMonotonicTimeProvider(), time.Millisecond)
	s.Stop()
	s.Stop()
}
