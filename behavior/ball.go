package behavior

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// BallConfig holds the bounce tunables
type BallConfig struct {
	BaseSpeed      float64
	SpeedRate      float64
	MaxBounceAngle float64 // degrees
}

// Ball reflects off borders and deflects off paddles with a speed increment
type Ball struct {
	engine.BehaviorBase
	cfg    BallConfig
	rng    *rand.Rand
	sounds Sounds

	bounces int
}

// NewBall creates a ball behavior, nil sounds is silent
func NewBall(cfg BallConfig, rng *rand.Rand, sounds Sounds) *Ball {
	return &Ball{cfg: cfg, rng: rng, sounds: orSilent(sounds)}
}

// Bounces returns paddle hits since the last Reset
func (b *Ball) Bounces() int { return b.bounces }

// BounceAngle maps a paddle-relative hit offset to a deflection angle in degrees
// Offsets outside [-1, 1] clamp to exactly ±maxDeg
func BounceAngle(offset, maxDeg float64) float64 {
	return vmath.Clamp(offset, -1, 1) * maxDeg
}

func (b *Ball) OnCollisionStart(other *engine.Entity) {
	e := b.Owner()
	switch other.Tag {
	case engine.TagBorder:
		if border, ok := engine.BehaviorOf[*Border](other); ok {
			e.Velocity = e.Velocity.Reflect(border.Normal())
		}
		b.sounds.PlayBounce()

	case engine.TagPaddle:
		if paddle, ok := engine.BehaviorOf[*Paddle](other); ok {
			paddle.RerollAim()
		}
		e.Velocity = b.deflect(e, other)
		b.bounces++
		b.sounds.PlayBounce()
	}
}

// deflect computes the classic paddle return: angle from hit offset, speed grown additively
func (b *Ball) deflect(e, paddle *engine.Entity) vmath.Vec2 {
	half := paddle.Shape.Size.Y / 2
	var offset float64
	if half > 0 {
		offset = (e.Center().Y - paddle.Center().Y) / half
	}

	direction := 1.0
	if e.Velocity.X > 0 {
		direction = -1
	}

	rad := vmath.Radians(BounceAngle(offset, b.cfg.MaxBounceAngle))
	lo := b.cfg.BaseSpeed * b.cfg.SpeedRate / 3
	hi := b.cfg.BaseSpeed * b.cfg.SpeedRate
	speed := e.Velocity.Len() + lo + b.rng.Float64()*(hi-lo)

	return vmath.V2(direction*math.Abs(math.Cos(rad))*speed, math.Sin(rad)*speed)
}

// Reset centers the ball at c, stops it and clears out-of-bounds flags
// Visibility is left to the next bounds pass
func (b *Ball) Reset(c vmath.Vec2) {
	e := b.Owner()
	e.SetCenter(c)
	e.PrevPos = e.Shape.Pos
	e.Velocity = vmath.Vec2{}
	e.OutOfBoundsH = false
	e.OutOfBoundsV = false
	b.bounces = 0
}
