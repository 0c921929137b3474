package config

import (
	"github.com/pkg/errors"
)

// ErrInvalid classifies every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"ball.size", c.Ball.Size},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.gravity", c.Paddle.Gravity},
		{"paddle.npc_speed", c.Paddle.NPCSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Wrapf(ErrInvalid, "%s must be positive, got %v", p.name, p.value)
		}
	}

	if c.Collision.Accuracy <= 0 {
		return errors.Wrapf(ErrInvalid, "collision.accuracy must be positive, got %d", c.Collision.Accuracy)
	}
	if c.Match.WinScore < 1 {
		return errors.Wrapf(ErrInvalid, "match.win_score must be at least 1, got %d", c.Match.WinScore)
	}
	if c.Match.ResetDelay < 0 || c.Match.ConfettiCount < 0 {
		return errors.Wrap(ErrInvalid, "match.reset_delay and match.confetti_count must not be negative")
	}
	if c.Sensor.LeftPort == c.Sensor.RightPort {
		return errors.Wrapf(ErrInvalid, "sensor ports must differ, both are %d", c.Sensor.LeftPort)
	}
	if c.Sensor.SignalTimeout <= 0 {
		return errors.Wrap(ErrInvalid, "sensor.signal_timeout must be positive")
	}
	if 2*c.Paddle.Margin+2*c.Paddle.Width >= c.Field.Width {
		return errors.Wrap(ErrInvalid, "paddles do not fit the field width")
	}
	if c.Paddle.Height > c.Field.Height {
		return errors.Wrap(ErrInvalid, "paddle.height exceeds field.height")
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return errors.Wrapf(ErrInvalid, "audio.master_volume must be 0-100, got %d", c.Audio.MasterVolume)
	}
	if c.Viz.EveryNTicks < 1 || c.Viz.Buffer < 1 {
		return errors.Wrap(ErrInvalid, "viz.every_n_ticks and viz.buffer must be at least 1")
	}
	if c.Tick.Interval <= 0 || c.Tick.MaxDelta <= 0 {
		return errors.Wrap(ErrInvalid, "tick.interval and tick.max_delta must be positive")
	}
	return nil
}
