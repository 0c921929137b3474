package game

import (
	"github.com/lixenwraith/dippid-pong/behavior"
	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// confettiPalette is sampled per particle
var confettiPalette = []engine.RGB{
	{R: 255, G: 90, B: 90},
	{R: 255, G: 210, B: 60},
	{R: 90, G: 220, B: 120},
	{R: 80, G: 170, B: 255},
	{R: 210, G: 110, B: 255},
}

func rgb(c [3]uint8) engine.RGB {
	return engine.RGB{R: c[0], G: c[1], B: c[2]}
}

// spawnEntities creates ball, paddles, borders and the center line in that order
func (m *Match) spawnEntities(deps Deps) {
	r := m.registry
	w, h := m.cfg.Width, m.cfg.Height

	bs := m.cfg.BallSize
	ball := r.Create(engine.Shape{Size: vmath.V2(bs, bs), Color: rgb(parameter.ColorBall)}, NameBall, engine.TagBall, true)
	ball.SetCenter(m.fieldCenter())
	ball.PrevPos = ball.Shape.Pos
	ball.AddBehavior(behavior.NewBall(m.cfg.Ball, m.rng, m.sounds))

	ps := m.cfg.PaddleSize
	y := h/2 - ps.Y/2
	m.spawnPaddle(NamePaddleLeft, vmath.V2(m.cfg.Margin, y), m.cfg.LeftPort, deps.Left, deps.Clock)
	m.spawnPaddle(NamePaddleRight, vmath.V2(w-m.cfg.Margin-ps.X, y), m.cfg.RightPort, deps.Right, deps.Clock)

	// Borders sit just outside the field so their inner edge is the field edge
	bottom := r.Create(engine.Shape{Pos: vmath.V2(0, -h), Size: vmath.V2(w, h), Color: rgb(parameter.ColorBorder)},
		NameBorderBottom, engine.TagBorder, true)
	bottom.AddBehavior(behavior.NewBorder(behavior.FacingUp))

	top := r.Create(engine.Shape{Pos: vmath.V2(0, h), Size: vmath.V2(w, h), Color: rgb(parameter.ColorBorder)},
		NameBorderTop, engine.TagBorder, true)
	top.AddBehavior(behavior.NewBorder(behavior.FacingDown))

	r.Create(engine.Shape{
		Pos:   vmath.V2(w/2-parameter.SeparatorWidth/2, 0),
		Size:  vmath.V2(parameter.SeparatorWidth, h),
		Color: rgb(parameter.ColorSeparator),
		Kind:  engine.ShapeDashed,
	}, NameSeparator, engine.TagDecor, false)
}

func (m *Match) spawnPaddle(name string, pos vmath.Vec2, port int, src sensor.Source, clock engine.TimeProvider) {
	e := m.registry.Create(engine.Shape{Pos: pos, Size: m.cfg.PaddleSize, Color: rgb(parameter.ColorPaddle)},
		name, engine.TagPaddle, true)
	e.AddBehavior(behavior.NewPaddle(port, m.cfg.Paddle, behavior.PaddleDeps{
		Source:   src,
		Clock:    clock,
		Field:    m.field,
		Registry: m.registry,
		Rng:      m.rng,
		Active:   func() bool { return m.machine.Current() == StatePlaying },
	}))
}

// spawnConfetti bursts particles from the exit edge back into the field
// Particles are non-colliding and destroy themselves once out of bounds
func (m *Match) spawnConfetti(exitLeft bool, at vmath.Vec2) int {
	size := m.cfg.ConfettiSize
	x, dir := 0.0, 1.0
	if !exitLeft {
		x, dir = m.cfg.Width-size, -1.0
	}
	pos := vmath.V2(x, vmath.Clamp(at.Y-size/2, 0, m.cfg.Height-size))

	base := m.cfg.Ball.BaseSpeed
	lo, hi := m.cfg.ConfettiSpeedMin, m.cfg.ConfettiSpeedMax
	for i := 0; i < m.cfg.ConfettiCount; i++ {
		angle := vmath.Radians((m.rng.Float64()*2 - 1) * m.cfg.ConfettiSpread)
		speed := base * (lo + m.rng.Float64()*(hi-lo))

		e := m.registry.Create(engine.Shape{
			Pos:   pos,
			Size:  vmath.V2(size, size),
			Color: confettiPalette[m.rng.Intn(len(confettiPalette))],
		}, "Confetti", engine.TagConfetti, false)
		e.Velocity = vmath.V2(dir*speed, 0).Rotate(angle)
		e.AddBehavior(behavior.NewConfetti(m.registry))
	}
	return m.cfg.ConfettiCount
}
