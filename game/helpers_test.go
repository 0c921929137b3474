package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/parameter"
	"github.com/lixenwraith/dippid-pong/sensor"
	"github.com/lixenwraith/dippid-pong/status"
	"github.com/lixenwraith/dippid-pong/vmath"
)

const frame = 16 * time.Millisecond

type soundCounter struct {
	bounces int
	scores  int
}

func (s *soundCounter) PlayBounce() { s.bounces++ }
func (s *soundCounter) PlayScore()  { s.scores++ }

type harness struct {
	match  *Match
	left   *sensor.ManualSource
	right  *sensor.ManualSource
	clock  *engine.MockTimeProvider
	sounds *soundCounter
	status *status.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		left:   sensor.NewManualSource(),
		right:  sensor.NewManualSource(),
		clock:  engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		sounds: &soundCounter{},
		status: status.NewRegistry(),
	}
	cfg := DefaultConfig()
	cfg.Seed = 1

	m, err := New(cfg, Deps{
		Left:   h.left,
		Right:  h.right,
		Clock:  h.clock,
		Sounds: h.sounds,
		Status: h.status,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	h.match = m
	return h
}

// send pushes a level motion reading and the button state for one player
func send(src *sensor.ManualSource, button float64) {
	src.Push(map[string]sensor.Reading{
		parameter.CapabilityMotion: {"x": 0, "y": 0, parameter.MotionAxis: 0},
		parameter.CapabilityButton: {sensor.ScalarKey: button},
	})
}

func (h *harness) tick(t *testing.T, dt time.Duration) {
	t.Helper()
	if err := h.match.Tick(dt); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

func (h *harness) expectState(t *testing.T, want State) {
	t.Helper()
	if got := h.match.State(); got != want {
		t.Fatalf("Expected state %s, got %s", StateName(want), StateName(got))
	}
}

// play connects the left player and readies up until the ball is served
func (h *harness) play(t *testing.T) {
	t.Helper()
	send(h.left, 0)
	h.tick(t, frame)
	h.expectState(t, StateWaiting)

	send(h.left, parameter.ButtonPressed)
	h.tick(t, frame)
	h.expectState(t, StatePlaying)
}

// exitLeft places the ball past the left edge moving away from the field
func (h *harness) exitLeft() {
	ball := h.match.Ball()
	ball.Teleport(vmath.V2(-100, 300))
	ball.Velocity = vmath.V2(-parameter.InitialBallSpeed, 0)
}

// exitRight places the ball past the right edge moving away from the field
func (h *harness) exitRight() {
	ball := h.match.Ball()
	ball.Teleport(vmath.V2(parameter.FieldWidth+100, 300))
	ball.Velocity = vmath.V2(parameter.InitialBallSpeed, 0)
}
