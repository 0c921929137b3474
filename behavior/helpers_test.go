package behavior

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/vmath"
)

type soundCounter struct {
	bounces int
	scores  int
}

func (s *soundCounter) PlayBounce() { s.bounces++ }
func (s *soundCounter) PlayScore()  { s.scores++ }

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func testBallConfig() BallConfig {
	return BallConfig{
		BaseSpeed:      parameter.InitialBallSpeed,
		SpeedRate:      parameter.SpeedRate,
		MaxBounceAngle: parameter.MaxBounceAngle,
	}
}

func testPaddleConfig() PaddleConfig {
	return PaddleConfig{
		BaseSpeed:     parameter.InitialBallSpeed,
		HumanFactor:   parameter.HumanSpeedFactor,
		TiltExponent:  parameter.TiltExponent,
		Gravity:       parameter.Gravity,
		NPCBaseSpeed:  parameter.NPCBaseSpeed,
		AimSpread:     parameter.NPCAimSpread,
		SignalTimeout: parameter.SignalTimeout,
	}
}

type fixture struct {
	registry *engine.Registry
	field    *engine.FixedField
	clock    *engine.MockTimeProvider
	rng      *rand.Rand
	sounds   *soundCounter
	active   bool
}

func newFixture() *fixture {
	return &fixture{
		registry: engine.NewRegistry(),
		field:    engine.NewFixedField(1000, 600),
		clock:    engine.NewMockTimeProvider(testStart),
		rng:      rand.New(rand.NewSource(7)),
		sounds:   &soundCounter{},
		active:   true,
	}
}

func (f *fixture) ball(x, y float64) (*engine.Entity, *Ball) {
	e := f.registry.Create(engine.Shape{Pos: vmath.V2(x, y), Size: vmath.V2(20, 20)}, "Ball", engine.TagBall, true)
	b := NewBall(testBallConfig(), f.rng, f.sounds)
	e.AddBehavior(b)
	return e, b
}

func (f *fixture) paddle(x, y float64, src sensor.Source) (*engine.Entity, *Paddle) {
	e := f.registry.Create(engine.Shape{Pos: vmath.V2(x, y), Size: vmath.V2(20, 100)}, "Paddle", engine.TagPaddle, true)
	p := NewPaddle(5700, testPaddleConfig(), PaddleDeps{
		Source:   src,
		Clock:    f.clock,
		Field:    f.field,
		Registry: f.registry,
		Rng:      f.rng,
		Active:   func() bool { return f.active },
	})
	e.AddBehavior(p)
	return e, p
}

func connectedSource(z, button float64) *sensor.ManualSource {
	src := sensor.NewManualSource()
	src.Push(map[string]sensor.Reading{
		parameter.CapabilityMotion: {"x": 0, "y": 0, parameter.MotionAxis: z},
		parameter.CapabilityButton: {sensor.ScalarKey: button},
	})
	return src
}
