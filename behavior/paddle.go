package behavior

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/physics"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// PaddleConfig holds input and autonomous steering tunables
type PaddleConfig struct {
	BaseSpeed     float64
	HumanFactor   float64
	TiltExponent  float64
	Gravity       float64
	NPCBaseSpeed  float64
	AimSpread     float64
	SignalTimeout time.Duration
}

// Paddle steers a paddle from sensor tilt when connected, otherwise tracks the ball
type Paddle struct {
	engine.BehaviorBase

	PlayerID int

	cfg      PaddleConfig
	source   sensor.Source
	clock    engine.TimeProvider
	field    engine.Field
	registry *engine.Registry
	rng      *rand.Rand

	// active gates gameplay motion, paddles stay still while it returns false
	active func() bool

	score     int
	npcOffset float64

	// Written by the sensor delivery goroutine, read once per tick
	mu         sync.Mutex
	inputVY    float64
	lastSignal time.Time
	signalled  bool

	wasConnected bool
	logger       *slog.Logger
}

// PaddleDeps bundles the collaborators a paddle reads each tick
type PaddleDeps struct {
	Source   sensor.Source
	Clock    engine.TimeProvider
	Field    engine.Field
	Registry *engine.Registry
	Rng      *rand.Rand
	Active   func() bool
}

// NewPaddle creates a paddle for playerID and subscribes to motion updates
// A nil source leaves the paddle permanently autonomous
func NewPaddle(playerID int, cfg PaddleConfig, deps PaddleDeps) *Paddle {
	p := &Paddle{
		PlayerID: playerID,
		cfg:      cfg,
		source:   deps.Source,
		clock:    deps.Clock,
		field:    deps.Field,
		registry: deps.Registry,
		rng:      deps.Rng,
		active:   deps.Active,
		logger:   slog.Default().With("component", "paddle", "player", playerID),
	}
	if p.active == nil {
		p.active = func() bool { return true }
	}
	if p.source != nil {
		p.source.Subscribe(parameter.CapabilityMotion, p.onMotion)
	}
	return p
}

// TiltVelocity maps a vertical tilt reading to paddle velocity
// sign(z) * |z/g|^exp * base * factor
func TiltVelocity(z float64, cfg PaddleConfig) float64 {
	magnitude := vmath.Sign(z) * math.Pow(math.Abs(z/cfg.Gravity), cfg.TiltExponent)
	return magnitude * cfg.BaseSpeed * cfg.HumanFactor
}

// onMotion runs on the sensor goroutine and only records input
func (p *Paddle) onMotion(r sensor.Reading) {
	z, ok := r[parameter.MotionAxis]
	if !ok {
		return
	}
	v := TiltVelocity(z, p.cfg)
	now := p.clock.Now()

	p.mu.Lock()
	p.inputVY = v
	p.lastSignal = now
	p.signalled = true
	p.mu.Unlock()
}

// IsConnected requires a recent motion signal and both consumed capabilities present
func (p *Paddle) IsConnected() bool {
	if p.source == nil {
		return false
	}

	p.mu.Lock()
	signalled, last := p.signalled, p.lastSignal
	p.mu.Unlock()

	if !signalled || p.clock.Now().Sub(last) > p.cfg.SignalTimeout {
		return false
	}
	motion, ok := p.source.Value(parameter.CapabilityMotion)
	if !ok {
		return false
	}
	if _, ok := motion[parameter.MotionAxis]; !ok {
		return false
	}
	return p.source.Has(parameter.CapabilityButton)
}

// IsReady is true for autonomous paddles, otherwise when the button is held
func (p *Paddle) IsReady() bool {
	if !p.IsConnected() {
		return true
	}
	r, ok := p.source.Value(parameter.CapabilityButton)
	if !ok {
		return false
	}
	v, ok := r.Scalar()
	return ok && v == parameter.ButtonPressed
}

// Score returns points in the current match
func (p *Paddle) Score() int { return p.score }

// AddPoint increments and returns the score
func (p *Paddle) AddPoint() int {
	p.score++
	return p.score
}

// ResetScore zeroes the score
func (p *Paddle) ResetScore() { p.score = 0 }

// AimOffset returns the current autonomous aim offset
func (p *Paddle) AimOffset() float64 { return p.npcOffset }

// RerollAim draws a new aim offset within ±spread of paddle height
func (p *Paddle) RerollAim() {
	h := p.Owner().Shape.Size.Y
	p.npcOffset = (p.rng.Float64()*2 - 1) * p.cfg.AimSpread * h
}

func (p *Paddle) Update(float64) {
	e := p.Owner()
	connected := p.IsConnected()
	if connected != p.wasConnected {
		p.wasConnected = connected
		p.logger.Info("paddle input changed", "connected", connected)
	}

	if p.active() {
		if connected {
			p.mu.Lock()
			e.Velocity = vmath.V2(0, p.inputVY)
			p.mu.Unlock()
		} else {
			e.Velocity = vmath.V2(0, p.track(e))
		}
	} else {
		e.Velocity = vmath.Vec2{}
	}

	physics.ClampInside(e, p.field.Size())
}

// track returns the autonomous vertical velocity toward the ball
func (p *Paddle) track(e *engine.Entity) float64 {
	balls := p.registry.FindByTag(engine.TagBall)
	if len(balls) == 0 {
		return 0
	}
	ball := balls[0]

	bc, pc := ball.Center(), e.Center()
	bv := ball.Velocity
	approaching := (bv.X < 0 && bc.X > pc.X) || (bv.X > 0 && bc.X < pc.X)

	factor := p.cfg.NPCBaseSpeed / 2
	if approaching {
		dx := math.Abs(bc.X - pc.X)
		factor = p.cfg.NPCBaseSpeed + (0.5 - math.Min(0.5, dx/p.field.Size().X))
	}

	target := pc.Y + p.npcOffset
	g := p.cfg.Gravity
	delta := vmath.Clamp(bc.Y-target, -g, g)
	return delta / g * p.cfg.BaseSpeed * factor
}

// Disconnect releases the sensor source
func (p *Paddle) Disconnect() error {
	if p.source == nil {
		return nil
	}
	return p.source.Close()
}
