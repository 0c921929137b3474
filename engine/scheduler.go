package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is advanced once per scheduler cycle
// A returned error stops the scheduler and is reported through Err
type Ticker interface {
	Tick(dt time.Duration) error
}

// Scheduler drives a Ticker on a fixed interval from a single goroutine
// Deadlines are drift-corrected; when the loop falls too far behind it resynchronizes instead of bursting
type Scheduler struct {
	ticker       Ticker
	clock        TimeProvider
	tickInterval time.Duration

	lastTick         time.Time
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	errMu sync.Mutex
	err   error
	done  chan struct{}
}

// NewScheduler creates a scheduler, interval must be positive
func NewScheduler(t Ticker, clock TimeProvider, tickInterval time.Duration) *Scheduler {
	return &Scheduler{
		ticker:       t,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		Go(s.loop)
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.Load() {
			s.wg.Wait()
		}
	})
}

// Done is closed when the loop exits for any reason
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that stopped the loop, if any
func (s *Scheduler) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()
	defer close(s.done)

	now := s.clock.Now()
	s.lastTick = now
	s.nextTickDeadline = now.Add(s.tickInterval)

	timer := time.NewTimer(s.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
		}

		now = s.clock.Now()
		if now.Before(s.nextTickDeadline) {
			timer.Reset(s.nextTickDeadline.Sub(now))
			continue
		}

		dt := now.Sub(s.lastTick)
		s.lastTick = now

		if err := s.ticker.Tick(dt); err != nil {
			s.errMu.Lock()
			s.err = err
			s.errMu.Unlock()
			slog.Error("tick failed, stopping scheduler", "error", err, "tick", s.tickCount.Load())
			return
		}
		s.tickCount.Add(1)

		s.nextTickDeadline = s.nextTickDeadline.Add(s.tickInterval)
		maxBehind := s.tickInterval * 2
		if now.Sub(s.nextTickDeadline) > maxBehind {
			s.nextTickDeadline = now.Add(s.tickInterval)
		}

		sleep := s.nextTickDeadline.Sub(s.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
