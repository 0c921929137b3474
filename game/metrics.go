package game

import (
	"sync/atomic"

	"github.com/lixenwraith/dippid-pong/status"
)

// metrics caches status pointers once, tick writes go straight to the atomics
type metrics struct {
	matchID     *status.AtomicString
	state       *status.AtomicString
	ticks       *atomic.Int64
	scoreLeft   *atomic.Int64
	scoreRight  *atomic.Int64
	bounces     *atomic.Int64
	entities    *atomic.Int64
	pairs       *atomic.Int64
	checks      *atomic.Int64
	leftOnline  *atomic.Bool
	rightOnline *atomic.Bool
	ballSpeed   *status.AtomicFloat
	tickMillis  *status.AtomicFloat
}

func newMetrics(reg *status.Registry) *metrics {
	if reg == nil {
		return nil
	}
	return &metrics{
		matchID:     reg.Strings.Get(status.KeyMatchID),
		state:       reg.Strings.Get(status.KeyState),
		ticks:       reg.Ints.Get(status.KeyTicks),
		scoreLeft:   reg.Ints.Get(status.KeyScoreLeft),
		scoreRight:  reg.Ints.Get(status.KeyScoreRight),
		bounces:     reg.Ints.Get(status.KeyBounces),
		entities:    reg.Ints.Get(status.KeyEntities),
		pairs:       reg.Ints.Get(status.KeyActivePairs),
		checks:      reg.Ints.Get(status.KeyChecks),
		leftOnline:  reg.Bools.Get(status.KeyLeftOnline),
		rightOnline: reg.Bools.Get(status.KeyRightOnline),
		ballSpeed:   reg.Floats.Get(status.KeyBallSpeed),
		tickMillis:  reg.Floats.Get(status.KeyTickMillis),
	}
}

func (mt *metrics) update(m *Match, snap *Snapshot) {
	if mt == nil {
		return
	}
	mt.matchID.Store(snap.MatchID)
	mt.state.Store(snap.State)
	mt.ticks.Store(int64(snap.Tick))
	mt.scoreLeft.Store(int64(snap.Left.Score))
	mt.scoreRight.Store(int64(snap.Right.Score))
	mt.bounces.Store(int64(m.ballBh.Bounces()))
	mt.entities.Store(int64(len(snap.Entities)))
	mt.pairs.Store(int64(m.collisions.ActivePairs()))
	mt.checks.Store(int64(m.collisions.LastChecks()))
	mt.leftOnline.Store(snap.Left.Connected)
	mt.rightOnline.Store(snap.Right.Connected)
	mt.ballSpeed.Set(m.ball.Velocity.Len())
	mt.tickMillis.Set(float64(m.frame.Microseconds()) / 1000)
}
