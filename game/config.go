package game

import (
	"time"

	"github.com/lixenwraith/dippid-pong/behavior"
	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// Config holds everything a match needs to build its entities and run its flow
type Config struct {
	Width  float64
	Height float64

	BallSize   float64
	PaddleSize vmath.Vec2
	Margin     float64

	Ball   behavior.BallConfig
	Paddle behavior.PaddleConfig

	WinScore     int
	ResetDelay   time.Duration
	MaxTickDelta time.Duration
	Accuracy     int

	ConfettiCount    int
	ConfettiSize     float64
	ConfettiSpeedMin float64
	ConfettiSpeedMax float64
	ConfettiSpread   float64 // degrees

	LeftPort  int
	RightPort int

	// FSMPath overrides the embedded match graph when set
	FSMPath string
	Seed    uint64
}

// DefaultConfig returns the tuned defaults
func DefaultConfig() Config {
	return Config{
		Width:      parameter.FieldWidth,
		Height:     parameter.FieldHeight,
		BallSize:   parameter.BallSize,
		PaddleSize: vmath.V2(parameter.PaddleWidth, parameter.PaddleHeight),
		Margin:     parameter.PaddleMargin,
		Ball: behavior.BallConfig{
			BaseSpeed:      parameter.InitialBallSpeed,
			SpeedRate:      parameter.SpeedRate,
			MaxBounceAngle: parameter.MaxBounceAngle,
		},
		Paddle: behavior.PaddleConfig{
			BaseSpeed:     parameter.InitialBallSpeed,
			HumanFactor:   parameter.HumanSpeedFactor,
			TiltExponent:  parameter.TiltExponent,
			Gravity:       parameter.Gravity,
			NPCBaseSpeed:  parameter.NPCBaseSpeed,
			AimSpread:     parameter.NPCAimSpread,
			SignalTimeout: parameter.SignalTimeout,
		},
		WinScore:         parameter.WinScore,
		ResetDelay:       parameter.ResetDelay,
		MaxTickDelta:     parameter.MaxTickDelta,
		Accuracy:         parameter.CollisionAccuracy,
		ConfettiCount:    parameter.ConfettiCount,
		ConfettiSize:     parameter.ConfettiSize,
		ConfettiSpeedMin: parameter.ConfettiSpeedMin,
		ConfettiSpeedMax: parameter.ConfettiSpeedMax,
		ConfettiSpread:   parameter.ConfettiSpread,
		LeftPort:         parameter.PlayerLeftPort,
		RightPort:        parameter.PlayerRightPort,
	}
}
