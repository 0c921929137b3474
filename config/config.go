// Package config loads the game settings from TOML and the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/lixenwraith/dippid-pong/audio"
	"github.com/lixenwraith/dippid-pong/game"
	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/vmath"
)

// Config mirrors the TOML file layout
type Config struct {
	Field     FieldConfig     `toml:"field"`
	Ball      BallConfig      `toml:"ball"`
	Paddle    PaddleConfig    `toml:"paddle"`
	Match     MatchConfig     `toml:"match"`
	Collision CollisionConfig `toml:"collision"`
	Sensor    SensorConfig    `toml:"sensor"`
	Audio     AudioConfig     `toml:"audio"`
	Viz       VizConfig       `toml:"viz"`
	Log       LogConfig       `toml:"log"`
	Tick      TickConfig      `toml:"tick"`
}

type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type BallConfig struct {
	Size           float64 `toml:"size"`
	Speed          float64 `toml:"speed"`
	SpeedRate      float64 `toml:"speed_rate"`
	MaxBounceAngle float64 `toml:"max_bounce_angle"`
}

type PaddleConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Margin       float64 `toml:"margin"`
	HumanFactor  float64 `toml:"human_factor"`
	TiltExponent float64 `toml:"tilt_exponent"`
	Gravity      float64 `toml:"gravity"`
	NPCSpeed     float64 `toml:"npc_speed"`
	AimSpread    float64 `toml:"aim_spread"`
}

type MatchConfig struct {
	WinScore      int           `toml:"win_score"`
	ResetDelay    time.Duration `toml:"reset_delay"`
	ConfettiCount int           `toml:"confetti_count"`
	// FSM points at a replacement match graph, empty uses the built-in one
	FSM string `toml:"fsm"`
}

type CollisionConfig struct {
	Accuracy int `toml:"accuracy"`
}

type SensorConfig struct {
	Host          string        `toml:"host"`
	LeftPort      int           `toml:"left_port"`
	RightPort     int           `toml:"right_port"`
	SignalTimeout time.Duration `toml:"signal_timeout"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	// MasterVolume is 0-100
	MasterVolume int `toml:"master_volume"`
}

type VizConfig struct {
	Addr        string `toml:"addr"`
	EveryNTicks int    `toml:"every_n_ticks"`
	Buffer      int    `toml:"buffer"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type TickConfig struct {
	Interval time.Duration `toml:"interval"`
	MaxDelta time.Duration `toml:"max_delta"`
}

// Default returns a config populated from parameter constants
func Default() *Config {
	return &Config{
		Field: FieldConfig{Width: parameter.FieldWidth, Height: parameter.FieldHeight},
		Ball: BallConfig{
			Size:           parameter.BallSize,
			Speed:          parameter.InitialBallSpeed,
			SpeedRate:      parameter.SpeedRate,
			MaxBounceAngle: parameter.MaxBounceAngle,
		},
		Paddle: PaddleConfig{
			Width:        parameter.PaddleWidth,
			Height:       parameter.PaddleHeight,
			Margin:       parameter.PaddleMargin,
			HumanFactor:  parameter.HumanSpeedFactor,
			TiltExponent: parameter.TiltExponent,
			Gravity:      parameter.Gravity,
			NPCSpeed:     parameter.NPCBaseSpeed,
			AimSpread:    parameter.NPCAimSpread,
		},
		Match: MatchConfig{
			WinScore:      parameter.WinScore,
			ResetDelay:    parameter.ResetDelay,
			ConfettiCount: parameter.ConfettiCount,
		},
		Collision: CollisionConfig{Accuracy: parameter.CollisionAccuracy},
		Sensor: SensorConfig{
			Host:          "0.0.0.0",
			LeftPort:      parameter.PlayerLeftPort,
			RightPort:     parameter.PlayerRightPort,
			SignalTimeout: parameter.SignalTimeout,
		},
		Audio: AudioConfig{Enabled: true, MasterVolume: 100},
		Viz: VizConfig{
			Addr:        parameter.VizAddr,
			EveryNTicks: parameter.VizEveryNTicks,
			Buffer:      parameter.VizClientBuffer,
		},
		Log:  LogConfig{Level: "info"},
		Tick: TickConfig{Interval: parameter.TickInterval, MaxDelta: parameter.MaxTickDelta},
	}
}

// GameConfig converts to the match settings
func (c *Config) GameConfig(seed uint64) game.Config {
	g := game.DefaultConfig()
	g.Width, g.Height = c.Field.Width, c.Field.Height
	g.BallSize = c.Ball.Size
	g.PaddleSize = vmath.V2(c.Paddle.Width, c.Paddle.Height)
	g.Margin = c.Paddle.Margin

	g.Ball.BaseSpeed = c.Ball.Speed
	g.Ball.SpeedRate = c.Ball.SpeedRate
	g.Ball.MaxBounceAngle = c.Ball.MaxBounceAngle

	g.Paddle.BaseSpeed = c.Ball.Speed
	g.Paddle.HumanFactor = c.Paddle.HumanFactor
	g.Paddle.TiltExponent = c.Paddle.TiltExponent
	g.Paddle.Gravity = c.Paddle.Gravity
	g.Paddle.NPCBaseSpeed = c.Paddle.NPCSpeed
	g.Paddle.AimSpread = c.Paddle.AimSpread
	g.Paddle.SignalTimeout = c.Sensor.SignalTimeout

	g.WinScore = c.Match.WinScore
	g.ResetDelay = c.Match.ResetDelay
	g.ConfettiCount = c.Match.ConfettiCount
	g.FSMPath = c.Match.FSM
	g.MaxTickDelta = c.Tick.MaxDelta
	g.Accuracy = c.Collision.Accuracy
	g.LeftPort, g.RightPort = c.Sensor.LeftPort, c.Sensor.RightPort
	g.Seed = seed
	return g
}

// AudioConfig converts to the sound manager settings
func (c *Config) AudioConfig() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = float64(c.Audio.MasterVolume) / 100
	return a
}

// LogLevel parses the configured level, unknown values fall back to info
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}
