package behavior

import (
	"math"
	"testing"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/vmath"
)

func TestBounceAngleClamps(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{0.5, 30},
		{1, 60},
		{-1, -60},
		{1.0001, 60},
		{7, 60},
		{-3.5, -60},
	}
	for _, tt := range tests {
		if got := BounceAngle(tt.offset, 60); got != tt.want {
			t.Errorf("BounceAngle(%v): expected %v, got %v", tt.offset, tt.want, got)
		}
	}
}

func TestBallReflectsOffBorder(t *testing.T) {
	f := newFixture()
	ballE, _ := f.ball(100, 100)
	ballE.Velocity = vmath.V2(300, 200)

	top := f.registry.Create(engine.Shape{Pos: vmath.V2(0, 600), Size: vmath.V2(1000, 600)}, "Border Top", engine.TagBorder, true)
	top.AddBehavior(NewBorder(FacingDown))

	ballE.CollisionStart(top)

	if ballE.Velocity != vmath.V2(300, -200) {
		t.Errorf("Expected (300, -200), got %v", ballE.Velocity)
	}
	if f.sounds.bounces != 1 {
		t.Errorf("Expected 1 bounce sound, got %d", f.sounds.bounces)
	}
}

func TestBallDeflectsOffPaddle(t *testing.T) {
	f := newFixture()
	ballE, ball := f.ball(0, 0)
	paddleE, _ := f.paddle(900, 250, nil)

	// Ball center level with the paddle top edge, moving right
	ballE.SetCenter(vmath.V2(890, paddleE.Center().Y+50))
	ballE.Velocity = vmath.V2(400, 0)
	before := ballE.Velocity.Len()

	ballE.CollisionStart(paddleE)

	v := ballE.Velocity
	if v.X >= 0 {
		t.Errorf("Expected ball to head left, got %v", v)
	}
	angle := vmath.Degrees(math.Atan2(v.Y, -v.X))
	if !vmath.ApproxEqual(angle, 60, 1e-9) {
		t.Errorf("Expected 60 degree deflection, got %v", angle)
	}

	cfg := testBallConfig()
	lo := before + cfg.BaseSpeed*cfg.SpeedRate/3
	hi := before + cfg.BaseSpeed*cfg.SpeedRate
	if s := v.Len(); s < lo-1e-9 || s > hi+1e-9 {
		t.Errorf("Expected speed in [%v, %v], got %v", lo, hi, s)
	}
	if ball.Bounces() != 1 {
		t.Errorf("Expected 1 bounce, got %d", ball.Bounces())
	}
}

func TestBallSpeedGrowsMonotonically(t *testing.T) {
	f := newFixture()
	ballE, _ := f.ball(0, 0)
	paddleE, _ := f.paddle(480, 250, nil)

	ballE.Velocity = vmath.V2(-300, 0)
	last := ballE.Velocity.Len()
	for i := 0; i < 20; i++ {
		ballE.SetCenter(vmath.V2(500, paddleE.Center().Y+float64(i%5-2)*30))
		ballE.CollisionStart(paddleE)
		if s := ballE.Velocity.Len(); s <= last {
			t.Fatalf("hit %d: expected speed above %v, got %v", i, last, s)
		} else {
			last = s
		}
	}
}

func TestBallDeflectionRerollsPaddleAim(t *testing.T) {
	f := newFixture()
	ballE, _ := f.ball(0, 0)
	paddleE, paddle := f.paddle(900, 250, nil)
	ballE.Velocity = vmath.V2(400, 0)

	seen := map[float64]bool{}
	for i := 0; i < 5; i++ {
		ballE.CollisionStart(paddleE)
		off := paddle.AimOffset()
		if math.Abs(off) > 0.45*paddleE.Shape.Size.Y {
			t.Errorf("Expected offset within 45%% of height, got %v", off)
		}
		seen[off] = true
	}
	if len(seen) < 2 {
		t.Error("Expected aim offset to change between bounces")
	}
}

func TestBallResetIsIdempotent(t *testing.T) {
	f := newFixture()
	ballE, ball := f.ball(-200, 900)
	ballE.Velocity = vmath.V2(1200, -30)
	ballE.OutOfBoundsH = true
	ballE.OutOfBoundsV = true

	center := vmath.V2(500, 300)
	ball.Reset(center)
	first := *ballE
	ball.Reset(center)
	ball.Reset(center)

	if ballE.Center() != center {
		t.Errorf("Expected center %v, got %v", center, ballE.Center())
	}
	if !ballE.Velocity.IsZero() || ballE.OutOfBoundsH || ballE.OutOfBoundsV {
		t.Errorf("Expected stopped ball with clear flags, got v=%v h=%v v=%v", ballE.Velocity, ballE.OutOfBoundsH, ballE.OutOfBoundsV)
	}
	if ballE.Shape != first.Shape || ballE.Velocity != first.Velocity || ballE.PrevPos != first.PrevPos {
		t.Error("Expected repeated Reset to leave state unchanged")
	}
}
