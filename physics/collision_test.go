package physics

import (
	"errors"
	"testing"

	"github.com/lixenwraith/dippid-pong/engine"
	"github.com/lixenwraith/dippid-pong/vmath"
)

type recorder struct {
	engine.BehaviorBase
	starts []string
	ends   []string
}

func (r *recorder) OnCollisionStart(other *engine.Entity) { r.starts = append(r.starts, other.Name) }
func (r *recorder) OnCollisionEnd(other *engine.Entity)   { r.ends = append(r.ends, other.Name) }

func box(r *engine.Registry, name string, x, y, w, h float64) (*engine.Entity, *recorder) {
	e := r.Create(engine.Shape{Pos: vmath.V2(x, y), Size: vmath.V2(w, h)}, name, engine.TagNone, true)
	rec := &recorder{}
	e.AddBehavior(rec)
	return e, rec
}

func newManager(t *testing.T) *CollisionManager {
	t.Helper()
	cm, err := NewCollisionManager(10, engine.NewFixedField(100, 100))
	if err != nil {
		t.Fatalf("NewCollisionManager failed: %v", err)
	}
	return cm
}

func TestNewCollisionManagerRejectsAccuracy(t *testing.T) {
	for _, n := range []int{0, -1, -50} {
		_, err := NewCollisionManager(n, engine.NewFixedField(10, 10))
		if !errors.Is(err, ErrInvalidAccuracy) {
			t.Errorf("accuracy %d: expected ErrInvalidAccuracy, got %v", n, err)
		}
	}
}

func TestStartAndEndFireOncePerTransition(t *testing.T) {
	r := engine.NewRegistry()
	cm := newManager(t)
	a, recA := box(r, "a", 10, 10, 10, 10)
	_, recB := box(r, "b", 15, 15, 10, 10)

	for i := 0; i < 3; i++ {
		r.Integrate(0.016)
		cm.Update(r)
	}
	if len(recA.starts) != 1 || len(recB.starts) != 1 {
		t.Fatalf("Expected one start each while overlapping, got a=%v b=%v", recA.starts, recB.starts)
	}
	if recA.starts[0] != "b" || recB.starts[0] != "a" {
		t.Errorf("Expected each side to see the other, got a=%v b=%v", recA.starts, recB.starts)
	}
	if len(recA.ends) != 0 {
		t.Errorf("Expected no end while overlapping, got %v", recA.ends)
	}

	a.Teleport(vmath.V2(60, 60))
	for i := 0; i < 3; i++ {
		r.Integrate(0.016)
		cm.Update(r)
	}
	if len(recA.ends) != 1 || len(recB.ends) != 1 {
		t.Errorf("Expected one end each after separation, got a=%v b=%v", recA.ends, recB.ends)
	}
	if cm.ActivePairs() != 0 {
		t.Errorf("Expected no active pairs, got %d", cm.ActivePairs())
	}

	a.Teleport(vmath.V2(12, 12))
	r.Integrate(0.016)
	cm.Update(r)
	if len(recA.starts) != 2 {
		t.Errorf("Expected a second start after re-entering, got %v", recA.starts)
	}
}

func TestSweepCatchesTunneling(t *testing.T) {
	r := engine.NewRegistry()
	cm := newManager(t)

	// A wall the ball would jump over in a single step
	_, wallRec := box(r, "wall", 50, 0, 10, 100)
	ball, _ := box(r, "ball", 10, 40, 4, 4)
	ball.Velocity = vmath.V2(6000, 0)

	r.Integrate(0.016)
	if ball.Shape.Pos.X < 60 {
		t.Fatalf("Expected ball to be past the wall, got %v", ball.Shape.Pos)
	}
	cm.Update(r)

	if len(wallRec.starts) != 1 {
		t.Errorf("Expected swept check to report the crossing, got %v", wallRec.starts)
	}
}

func TestSweepIsOrderIndependent(t *testing.T) {
	// Small fast entity registered before and after a large static one
	for _, smallFirst := range []bool{true, false} {
		r := engine.NewRegistry()
		cm := newManager(t)

		var small *engine.Entity
		var rec *recorder
		if smallFirst {
			small, rec = box(r, "small", 0, 45, 2, 2)
			box(r, "big", 40, 0, 20, 100)
		} else {
			box(r, "big", 40, 0, 20, 100)
			small, rec = box(r, "small", 0, 45, 2, 2)
		}
		small.Velocity = vmath.V2(5000, 0)
		r.Integrate(0.016)
		cm.Update(r)

		if len(rec.starts) != 1 {
			t.Errorf("smallFirst=%v: expected 1 start, got %v", smallFirst, rec.starts)
		}
	}

	// Large mover landing on a small static entity, none of its corners enter the small one
	r := engine.NewRegistry()
	cm := newManager(t)
	wall, _ := box(r, "wall", 0, 0, 5, 100)
	_, pin := box(r, "pin", 50, 50, 0.5, 0.5)
	wall.Velocity = vmath.V2(3000, 0)
	r.Integrate(0.016)
	cm.Update(r)
	if len(pin.starts) != 1 {
		t.Errorf("Expected reverse sweep to catch the pin, got %v", pin.starts)
	}
}

func TestNonCollidableIgnored(t *testing.T) {
	r := engine.NewRegistry()
	cm := newManager(t)
	_, rec := box(r, "a", 10, 10, 10, 10)
	ghost, _ := box(r, "ghost", 10, 10, 10, 10)
	ghost.Collidable = false

	cm.Update(r)
	if len(rec.starts) != 0 {
		t.Errorf("Expected no events with non-collidable entity, got %v", rec.starts)
	}
}

func TestDestroyedPairDroppedWithoutEnd(t *testing.T) {
	r := engine.NewRegistry()
	cm := newManager(t)
	_, rec := box(r, "a", 10, 10, 10, 10)
	b, _ := box(r, "b", 12, 12, 10, 10)

	cm.Update(r)
	r.Destroy(b.ID())
	r.Compact()
	cm.Update(r)

	if len(rec.ends) != 0 {
		t.Errorf("Expected no end event for destroyed partner, got %v", rec.ends)
	}
	if cm.ActivePairs() != 0 {
		t.Errorf("Expected pair pruned, got %d", cm.ActivePairs())
	}
}

func TestOutOfBoundsAxisIndependence(t *testing.T) {
	size := vmath.V2(100, 100)
	tests := []struct {
		name   string
		x, y   float64
		wantH  bool
		wantV  bool
		wantVs bool
	}{
		{"inside", 40, 40, false, false, true},
		{"left only", -20, 40, true, false, false},
		{"right only", 101, 40, true, false, false},
		{"below only", 40, -20, false, true, false},
		{"above only", 40, 101, false, true, false},
		{"left and above", -20, 120, true, true, false},
		{"touching left edge", -10, 40, false, false, true},
		{"straddling right edge", 95, 40, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := engine.NewRegistry()
			e := r.Create(engine.Shape{Pos: vmath.V2(tt.x, tt.y), Size: vmath.V2(10, 10)}, "e", engine.TagNone, true)
			UpdateBounds(e, size)
			if e.OutOfBoundsH != tt.wantH {
				t.Errorf("Expected horizontal %v, got %v", tt.wantH, e.OutOfBoundsH)
			}
			if e.OutOfBoundsV != tt.wantV {
				t.Errorf("Expected vertical %v, got %v", tt.wantV, e.OutOfBoundsV)
			}
			if e.Visible != tt.wantVs {
				t.Errorf("Expected visible %v, got %v", tt.wantVs, e.Visible)
			}
		})
	}
}

func TestClampInside(t *testing.T) {
	r := engine.NewRegistry()
	e := r.Create(engine.Shape{Pos: vmath.V2(-5, 95), Size: vmath.V2(10, 20)}, "p", engine.TagPaddle, true)
	ClampInside(e, vmath.V2(100, 100))
	if e.Shape.Pos != vmath.V2(0, 80) {
		t.Errorf("Expected (0, 80), got %v", e.Shape.Pos)
	}
}
