// Package game builds the match entities and drives the match flow once per tick
package game

import (
	_ "embed"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/dippid-pong/behavior"
	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/engine/fsm"
	"github.com/lixenwraith/dippid-pong/physics"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/status"
	"github.com/lixenwraith/dippid-pong/vmath"
)

//go:embed match.toml
var matchGraph []byte

// ErrMissingEntity reports that the ball or a paddle left the registry, a construction bug
var ErrMissingEntity = errors.New("required entity missing")

// Entity names looked up at every flow step
const (
	NameBall         = "Ball"
	NamePaddleLeft   = "Paddle Left"
	NamePaddleRight  = "Paddle Right"
	NameBorderTop    = "Border Top"
	NameBorderBottom = "Border Bottom"
	NameSeparator    = "Separator"
)

// Deps are the collaborators a match consumes
// Nil sources leave that slot autonomous, nil sounds and status are allowed
type Deps struct {
	Left   sensor.Source
	Right  sensor.Source
	Clock  engine.TimeProvider
	Sounds behavior.Sounds
	Status *status.Registry
}

// Match owns the registry, collision pass and flow machine of one game session
// Tick and every mutating method must be called from a single goroutine
type Match struct {
	cfg        Config
	field      *engine.FixedField
	registry   *engine.Registry
	collisions *physics.CollisionManager
	machine    *fsm.Machine[*Match]
	rng        *rand.Rand
	sounds     behavior.Sounds
	sources    [2]sensor.Source

	id    uuid.UUID
	ticks uint64
	frame time.Duration

	// Resolved at the start of every flow step
	ball      *engine.Entity
	ballBh    *behavior.Ball
	left      *behavior.Paddle
	right     *behavior.Paddle
	leftEnt   *engine.Entity
	rightEnt  *engine.Entity
	goal      *behavior.Paddle
	lastScore *behavior.Paddle
	winner    *behavior.Paddle

	resetTimer time.Duration

	snapshot atomic.Pointer[Snapshot]
	metrics  *metrics
	logger   *slog.Logger
}

// New builds the entity set and enters the initial state
func New(cfg Config, deps Deps) (*Match, error) {
	if deps.Clock == nil {
		deps.Clock = engine.NewMonotonicTimeProvider()
	}

	field := engine.NewFixedField(cfg.Width, cfg.Height)
	collisions, err := physics.NewCollisionManager(cfg.Accuracy, field)
	if err != nil {
		return nil, errors.Wrap(err, "collision manager")
	}

	m := &Match{
		cfg:        cfg,
		field:      field,
		registry:   engine.NewRegistry(),
		collisions: collisions,
		machine:    fsm.NewMachine[*Match](),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		sounds:     deps.Sounds,
		sources:    [2]sensor.Source{deps.Left, deps.Right},
		id:         uuid.New(),
		metrics:    newMetrics(deps.Status),
		logger:     slog.Default().With("component", "match"),
	}
	if m.sounds == nil {
		m.sounds = behavior.Silent{}
	}

	m.spawnEntities(deps)
	if err := m.resolve(); err != nil {
		return nil, err
	}

	if err := m.buildFlow(); err != nil {
		return nil, err
	}
	if err := m.machine.Init(m); err != nil {
		return nil, errors.Wrap(err, "match flow init")
	}

	m.publish()
	return m, nil
}

// Tick advances the simulation by dt, clamped to the configured maximum
// Order: integrate and behavior updates, collisions, flow step, compaction
func (m *Match) Tick(dt time.Duration) error {
	if dt < 0 {
		dt = 0
	}
	if m.cfg.MaxTickDelta > 0 && dt > m.cfg.MaxTickDelta {
		dt = m.cfg.MaxTickDelta
	}
	m.frame = dt

	m.registry.Integrate(dt.Seconds())
	m.collisions.Update(m.registry)

	if err := m.resolve(); err != nil {
		return err
	}
	m.machine.Update(m, dt)

	m.registry.Compact()
	m.ticks++
	m.publish()
	return nil
}

// resolve looks up the entities the flow depends on
func (m *Match) resolve() error {
	ball, ok := m.registry.FindByName(NameBall)
	if !ok {
		return errors.Wrap(ErrMissingEntity, NameBall)
	}
	ballBh, ok := engine.BehaviorOf[*behavior.Ball](ball)
	if !ok {
		return errors.Wrapf(ErrMissingEntity, "%s behavior", NameBall)
	}

	leftEnt, left, err := m.paddle(NamePaddleLeft)
	if err != nil {
		return err
	}
	rightEnt, right, err := m.paddle(NamePaddleRight)
	if err != nil {
		return err
	}

	m.ball, m.ballBh = ball, ballBh
	m.leftEnt, m.left = leftEnt, left
	m.rightEnt, m.right = rightEnt, right
	return nil
}

func (m *Match) paddle(name string) (*engine.Entity, *behavior.Paddle, error) {
	e, ok := m.registry.FindByName(name)
	if !ok {
		return nil, nil, errors.Wrap(ErrMissingEntity, name)
	}
	p, ok := engine.BehaviorOf[*behavior.Paddle](e)
	if !ok {
		return nil, nil, errors.Wrapf(ErrMissingEntity, "%s behavior", name)
	}
	return e, p, nil
}

// buildFlow declares states, registers guards and actions, then loads the graph
func (m *Match) buildFlow() error {
	for id, name := range stateNames {
		m.machine.AddState(id, name)
	}
	registerFlow(m.machine)

	graph := matchGraph
	if m.cfg.FSMPath != "" {
		data, err := os.ReadFile(m.cfg.FSMPath)
		if err != nil {
			return errors.Wrapf(err, "read match graph %s", m.cfg.FSMPath)
		}
		graph = data
	}
	if err := m.machine.LoadConfig(graph); err != nil {
		return errors.Wrap(err, "load match graph")
	}

	m.machine.OnTransition(func(from, to fsm.StateID) {
		m.logger.Info("state changed",
			"match", m.id.String(),
			"from", StateName(from),
			"to", StateName(to))
	})
	return nil
}

// Close releases both paddles' sensor sources
func (m *Match) Close() error {
	var first error
	for _, p := range []*behavior.Paddle{m.left, m.right} {
		if p == nil {
			continue
		}
		if err := p.Disconnect(); err != nil && first == nil {
			first = errors.Wrapf(err, "disconnect player %d", p.PlayerID)
		}
	}
	return first
}

// State returns the current flow state
func (m *Match) State() State { return m.machine.Current() }

// ID returns the identity of the current match
func (m *Match) ID() uuid.UUID { return m.id }

// Registry exposes the entity registry
func (m *Match) Registry() *engine.Registry { return m.registry }

// Field returns the play field bounds provider
func (m *Match) Field() engine.Field { return m.field }

// Ball returns the ball entity
func (m *Match) Ball() *engine.Entity { return m.ball }

// Left returns the left paddle behavior
func (m *Match) Left() *behavior.Paddle { return m.left }

// Right returns the right paddle behavior
func (m *Match) Right() *behavior.Paddle { return m.right }

// Winner returns the winning paddle while in game over, otherwise nil
func (m *Match) Winner() *behavior.Paddle { return m.winner }

// LastScorer returns the paddle that scored most recently in this match
func (m *Match) LastScorer() *behavior.Paddle { return m.lastScore }

// ResetTimer returns the remaining pause before the next serve
func (m *Match) ResetTimer() time.Duration { return m.resetTimer }

// Ticks returns the number of completed ticks
func (m *Match) Ticks() uint64 { return m.ticks }

// Snapshot returns the view published by the latest tick, safe from any goroutine
func (m *Match) Snapshot() *Snapshot { return m.snapshot.Load() }

func (m *Match) fieldCenter() vmath.Vec2 {
	return vmath.V2(m.cfg.Width/2, m.cfg.Height/2)
}
